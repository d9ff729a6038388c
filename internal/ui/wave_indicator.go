// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"strings"

	"go-planes/internal/component"
	"go-planes/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current wave in roman numerals and a bar with the
// share of its enemies already launched.
type WaveIndicator struct {
	X, Y     float32 // top right corner
	Width    float32
	fontFace font.Face
}

func NewWaveIndicator(x, y, width float32, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Width: width, fontFace: fontFace}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// CurrentWave returns the 1-based number of the latest wave that started
// spawning, or 0 before the first one.
func CurrentWave(waves []*component.Wave) int {
	current := 0
	for i, w := range waves {
		if w.EnemiesSpawned > 0 {
			current = i + 1
		}
	}
	return current
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waves []*component.Wave) {
	n := CurrentWave(waves)
	if n == 0 {
		return
	}
	w := waves[n-1]
	label := fmt.Sprintf("%s/%s", toRoman(n), toRoman(len(waves)))
	DrawTextRight(screen, label, i.fontFace, i.X, i.Y)

	progress := float32(w.EnemiesSpawned) / float32(w.EnemiesToSpawn)
	barY := i.Y + 6
	vector.DrawFilledRect(screen, i.X-i.Width, barY, i.Width, 3, config.OverlayColor, false)
	vector.DrawFilledRect(screen, i.X-i.Width, barY, i.Width*progress, 3, config.TextColor, false)
}
