package utils

import (
	"math"

	"go-shield-defense/internal/component"
)

// Distance — евклидово расстояние между точками.
func Distance(a, b component.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// CirclesOverlap сообщает, пересекаются ли два круга.
// Касание (расстояние ровно r1+r2) попаданием не считается.
func CirclesOverlap(c1 component.Position, r1 float64, c2 component.Position, r2 float64) bool {
	return Distance(c1, c2) < r1+r2
}

// AngleTo возвращает направление от center на point.
func AngleTo(center, point component.Position) float64 {
	return math.Atan2(point.Y-center.Y, point.X-center.X)
}
