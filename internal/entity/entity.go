package entity

import (
	"go-shield-defense/internal/component"
	"go-shield-defense/internal/types"
	"go-shield-defense/internal/utils"
)

// Entity — движущийся или неподвижный круг: ядро игрока или враждебная частица.
type Entity struct {
	ID       types.EntityID
	Position component.Position
	Velocity component.Velocity
	Radius   float64
	Role     component.Role
	Alive    bool

	// Reversing держится один тик после отражения, чтобы столкновение не сработало повторно.
	Reversing  bool
	ReversedAt uint64
	// Deflected — частица хотя бы раз была отражена щитом.
	Deflected bool
}

// Integrate сдвигает сущность на velocity*dtTicks. Ядро игрока не двигается.
func (e *Entity) Integrate(dtTicks float64) {
	if e.Role == component.RolePlayer || e.Velocity.IsZero() {
		return
	}
	e.Position.X += e.Velocity.VX * dtTicks
	e.Position.Y += e.Velocity.VY * dtTicks
}

// OutOfBounds — вышла ли сущность за мир шириной w и высотой h больше чем на margin.
func (e *Entity) OutOfBounds(w, h, margin float64) bool {
	return e.Position.X > w+e.Radius+margin ||
		e.Position.X < -(e.Radius+margin) ||
		e.Position.Y > h+e.Radius+margin ||
		e.Position.Y < -(e.Radius+margin)
}

// Overlaps — строгое пересечение кругов двух сущностей.
func (e *Entity) Overlaps(other *Entity) bool {
	return utils.CirclesOverlap(e.Position, e.Radius, other.Position, other.Radius)
}
