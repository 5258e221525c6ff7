// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// arcEpsilon поглощает ошибку округления на концах дуги.
const arcEpsilon = 1e-9

// AngleDiff возвращает кратчайшую разницу между углами, в диапазоне [-π, π).
// Разница, уже лежащая в диапазоне, возвращается без изменений.
func AngleDiff(from, to float64) float64 {
	d := to - from
	if d >= -math.Pi && d < math.Pi {
		return d
	}
	return NormalizeAngle(d)
}

// WithinArc проверяет, лежит ли angle в [facing-halfWidth, facing+halfWidth] по модулю 2π.
func WithinArc(angle, facing, halfWidth float64) bool {
	if halfWidth >= math.Pi {
		return true
	}
	return math.Abs(AngleDiff(facing, angle)) <= halfWidth+arcEpsilon
}
