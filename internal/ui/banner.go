// internal/ui/banner.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Banner — затемнение экрана и надпись по центру.
type Banner struct {
	Face    font.Face
	Text    color.Color
	Overlay color.Color
}

func NewBanner(face font.Face, textColor, overlay color.Color) *Banner {
	return &Banner{Face: face, Text: textColor, Overlay: overlay}
}

// Draw рисует строки по центру, одну под другой.
func (b *Banner) Draw(screen *ebiten.Image, lines ...string) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), b.Overlay, false)

	lineHeight := b.Face.Metrics().Height.Ceil()
	y := h/2 - lineHeight*(len(lines)-1)/2
	for _, line := range lines {
		width := text.BoundString(b.Face, line).Dx()
		text.Draw(screen, line, b.Face, (w-width)/2, y, b.Text)
		y += lineHeight
	}
}
