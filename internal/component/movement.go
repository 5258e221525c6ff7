// internal/component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости, единиц за тик
type Velocity struct {
	VX, VY float64
}

// Negate разворачивает скорость в обратную сторону.
func (v *Velocity) Negate() {
	v.VX = -v.VX
	v.VY = -v.VY
}

// IsZero сообщает, стоит ли сущность на месте.
func (v Velocity) IsZero() bool {
	return v.VX == 0 && v.VY == 0
}
