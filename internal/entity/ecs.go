// internal/entity/ecs.go
package entity

import (
	"errors"
	"fmt"
	"math"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/types"
)

var (
	ErrInvalidRadius   = errors.New("entity radius must be positive")
	ErrInvalidVelocity = errors.New("entity velocity must be finite")
	ErrInvalidPosition = errors.New("entity position must be finite")
)

// ECS владеет всеми сущностями, щитом и состоянием игры одной сессии.
// Сущности лежат плотным срезом в порядке появления; удалённые вырезаются при Cull.
type ECS struct {
	GameTime  float64 // метка времени последнего тика, мс
	Tick      uint64
	NextID    types.EntityID
	Entities  []*Entity
	Shield    *component.Shield
	GameState *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:    1,
		Entities:  make([]*Entity, 0, 32),
		GameState: &component.GameState{Phase: component.Running},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Spawn добавляет живую сущность. Невалидный радиус, NaN или Inf в позиции и скорости отклоняются сразу.
func (ecs *ECS) Spawn(role component.Role, pos component.Position, vel component.Velocity, radius float64) (*Entity, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if !finite(pos.X) || !finite(pos.Y) {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrInvalidPosition, pos.X, pos.Y)
	}
	if !finite(vel.VX) || !finite(vel.VY) {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrInvalidVelocity, vel.VX, vel.VY)
	}
	if role == component.RolePlayer {
		vel = component.Velocity{}
	}

	e := &Entity{
		ID:       ecs.NewEntity(),
		Position: pos,
		Velocity: vel,
		Radius:   radius,
		Role:     role,
		Alive:    true,
	}
	ecs.Entities = append(ecs.Entities, e)
	return e, nil
}

// Cull вырезает мёртвые сущности и возвращает удалённые.
func (ecs *ECS) Cull() []*Entity {
	var removed []*Entity
	kept := ecs.Entities[:0]
	for _, e := range ecs.Entities {
		if e.Alive {
			kept = append(kept, e)
		} else {
			removed = append(removed, e)
		}
	}
	for i := len(kept); i < len(ecs.Entities); i++ {
		ecs.Entities[i] = nil
	}
	ecs.Entities = kept
	return removed
}

// Find ищет сущность по идентификатору.
func (ecs *ECS) Find(id types.EntityID) (*Entity, bool) {
	for _, e := range ecs.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Count возвращает число сущностей заданной роли.
func (ecs *ECS) Count(role component.Role) int {
	n := 0
	for _, e := range ecs.Entities {
		if e.Role == role {
			n++
		}
	}
	return n
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
