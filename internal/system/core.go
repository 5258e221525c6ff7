package system

import (
	"go-shield-defense/internal/entity"
	"go-shield-defense/internal/event"
)

// CoreTarget — неподвижное ядро игрока в центре мира. Любое касание смертельно.
type CoreTarget struct {
	core            *entity.Entity
	collision       *CollisionSystem
	eventDispatcher *event.Dispatcher
}

func NewCoreTarget(core *entity.Entity, collision *CollisionSystem, eventDispatcher *event.Dispatcher) *CoreTarget {
	return &CoreTarget{
		core:            core,
		collision:       collision,
		eventDispatcher: eventDispatcher,
	}
}

// Entity возвращает сущность ядра.
func (c *CoreTarget) Entity() *entity.Entity {
	return c.core
}

func (c *CoreTarget) HitTest(e *entity.Entity) bool {
	return c.core.Alive && c.core.Overlaps(e)
}

// OnHit поглощает ядро и снимает его с регистрации.
func (c *CoreTarget) OnHit(e *entity.Entity) {
	c.core.Alive = false
	c.collision.RemoveTarget(c)
	c.eventDispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: event.Hit{Target: "core", Entity: e}})
}
