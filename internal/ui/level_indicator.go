// internal/ui/level_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	progressBarWidth  = 118
	progressBarHeight = 12
	borderWidth       = 1
)

var (
	progressColorFill = color.RGBA{70, 100, 120, 220}
	borderColor       = color.White
)

// LevelIndicator отображает уровень римскими цифрами и полосу до следующего уровня.
type LevelIndicator struct {
	X, Y  float32
	Face  font.Face
	Color color.Color
}

// NewLevelIndicator создает новый индикатор уровня.
func NewLevelIndicator(x, y float32, face font.Face, c color.Color) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y, Face: face, Color: c}
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

// Progress — доля пути от текущего уровня к следующему, [0, 1).
func Progress(score, levelStep int) float64 {
	if levelStep <= 0 || score <= 0 {
		return 0
	}
	return float64(score%levelStep) / float64(levelStep)
}

// Draw отрисовывает индикатор. Нулевой уровень показывается только полосой.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level, score, levelStep int) {
	vector.StrokeRect(screen, i.X, i.Y, progressBarWidth, progressBarHeight, borderWidth, borderColor, true)

	fillWidth := float32(float64(progressBarWidth-borderWidth*2) * Progress(score, levelStep))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, progressBarHeight-borderWidth*2, progressColorFill, true)
	}

	if label := toRoman(level); label != "" {
		text.Draw(screen, label, i.Face, int(i.X)+progressBarWidth+10, int(i.Y)+progressBarHeight, i.Color)
	}
}
