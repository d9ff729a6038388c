// internal/ui/text.go
package ui

import (
	"go-planes/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawText draws s with its baseline at (x, y).
func DrawText(screen *ebiten.Image, s string, face font.Face, x, y float32) {
	text.Draw(screen, s, face, int(x), int(y), config.TextColor)
}

// DrawTextRight draws s so that it ends at x.
func DrawTextRight(screen *ebiten.Image, s string, face font.Face, x, y float32) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, int(x)-w, int(y), config.TextColor)
}

// DrawTextCentered draws each line of lines centered on cx, starting at y.
func DrawTextCentered(screen *ebiten.Image, face font.Face, cx, y float32, lines ...string) {
	lineHeight := face.Metrics().Height.Ceil() + 4
	for n, s := range lines {
		w := text.BoundString(face, s).Dx()
		text.Draw(screen, s, face, int(cx)-w/2, int(y)+n*lineHeight, config.TextColor)
	}
}
