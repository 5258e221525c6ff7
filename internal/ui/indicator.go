// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок фазы игры, вспыхивает при каждом отражении.
type StateIndicator struct {
	X, Y      float32
	Radius    float32
	LastPulse time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// PulseScale — множитель радиуса через elapsed секунд после вспышки.
func PulseScale(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

// Pulse запускает вспышку.
func (i *StateIndicator) Pulse(at time.Time) {
	i.LastPulse = at
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color) {
	scale := PulseScale(time.Since(i.LastPulse).Seconds())
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}
