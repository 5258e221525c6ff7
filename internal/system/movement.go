// internal/system/movement.go
package system

import (
	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/entity"
	"go-shield-defense/internal/event"
)

// MovementSystem сдвигает частицы и помечает вылетевшие за границы мира.
type MovementSystem struct {
	ecs             *entity.ECS
	world           config.WorldConfig
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, world config.WorldConfig, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, world: world, eventDispatcher: eventDispatcher}
}

// Update продвигает каждую живую частицу на один тик.
func (s *MovementSystem) Update() {
	for _, e := range s.ecs.Entities {
		if !s.ecs.GameState.Running() {
			return
		}
		if !e.Alive || e.Role != component.RoleHostile {
			continue
		}
		e.Integrate(1)
		if e.OutOfBounds(s.world.Width, s.world.Height, s.world.CullMargin) {
			e.Alive = false
			if !e.Deflected {
				s.eventDispatcher.Dispatch(event.Event{Type: event.EntityEscaped, Data: e})
			}
		}
	}
}
