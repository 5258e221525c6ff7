package render

import (
	"math"

	"go-shield-defense/internal/component"
)

// ArcPoints разбивает дугу щита на segments отрезков.
// Дуга шириной 2π и больше превращается в замкнутую окружность.
func ArcPoints(center component.Position, radius, facing, halfWidth float64, segments int) []component.Position {
	if segments < 1 {
		segments = 1
	}
	start, span := facing-halfWidth, 2*halfWidth
	if halfWidth >= math.Pi {
		start, span = 0, 2*math.Pi
	}
	points := make([]component.Position, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := start + span*float64(i)/float64(segments)
		points = append(points, component.Position{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return points
}
