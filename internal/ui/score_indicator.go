// internal/ui/score_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator пишет текущий счёт в углу экрана.
type ScoreIndicator struct {
	X, Y  int
	Face  font.Face
	Color color.Color
}

func NewScoreIndicator(x, y int, face font.Face, c color.Color) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, Face: face, Color: c}
}

func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, score int) {
	text.Draw(screen, ScoreLabel(score), i.Face, i.X, i.Y, i.Color)
}
