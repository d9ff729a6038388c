// internal/ui/score_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ScoreIndicator caches the score text and only rebuilds it when the score
// changes.
type ScoreIndicator struct {
	X, Y     float32
	fontFace font.Face
	score    int64
	label    string
}

func NewScoreIndicator(x, y float32, fontFace font.Face) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, fontFace: fontFace, label: "0"}
}

// SetScore updates the displayed value.
func (i *ScoreIndicator) SetScore(score int64) {
	if score == i.score && i.label != "" {
		return
	}
	i.score = score
	i.label = strconv.FormatInt(score, 10)
}

// Text is the current label.
func (i *ScoreIndicator) Text() string {
	return i.label
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image) {
	DrawText(screen, i.label, i.fontFace, i.X, i.Y)
}
