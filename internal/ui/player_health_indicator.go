// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-planes/internal/config"
	"go-planes/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y          float32
	Width, Height float32
	fontFace      font.Face
}

func NewPlayerHealthIndicator(x, y float32, fontFace font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		X:        x,
		Y:        y,
		Width:    config.HealthBarWidth,
		Height:   config.HealthBarHeight,
		fontFace: fontFace,
	}
}

// healthColor blends from the low colour to the full colour.
func healthColor(health, maxHealth int) color.RGBA {
	if maxHealth <= 0 {
		return config.HealthLowColor
	}
	t := utils.Clamp(float64(health)/float64(maxHealth), 0, 1)
	lerp := func(a, b uint8) uint8 { return uint8(utils.Lerp(float64(a), float64(b), t)) }
	lo, hi := config.HealthLowColor, config.HealthColor
	return color.RGBA{lerp(lo.R, hi.R), lerp(lo.G, hi.G), lerp(lo.B, hi.B), 255}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.OverlayColor, false)
	if maxHealth > 0 && health > 0 {
		fill := i.Width * float32(health) / float32(maxHealth)
		vector.DrawFilledRect(screen, i.X, i.Y, fill, i.Height, healthColor(health, maxHealth), false)
	}
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 1, config.TextColor, false)

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	DrawText(screen, label, i.fontFace, i.X, i.Y+i.Height+14)
}
