// internal/system/shield.go
package system

import (
	"math"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/entity"
	"go-shield-defense/internal/event"
	"go-shield-defense/internal/utils"
)

// ShieldSystem наводит щит по указателю и отвечает на попадания в него.
type ShieldSystem struct {
	ecs             *entity.ECS
	shield          *component.Shield
	cfg             config.ShieldConfig
	centerX         float64
	eventDispatcher *event.Dispatcher
}

func NewShieldSystem(ecs *entity.ECS, cfg config.ShieldConfig, world config.WorldConfig, eventDispatcher *event.Dispatcher) *ShieldSystem {
	return &ShieldSystem{
		ecs:             ecs,
		shield:          ecs.Shield,
		cfg:             cfg,
		centerX:         world.CenterX(),
		eventDispatcher: eventDispatcher,
	}
}

// FacingFor переводит горизонтальную координату указателя в угол щита.
// Преобразование не ограничено: крайние значения уводят дугу на несколько оборотов.
func (s *ShieldSystem) FacingFor(pointerX float64) float64 {
	return s.cfg.Sensitivity*(pointerX-s.centerX) + math.Pi
}

// SetFacing обновляет угол щита. События вне окна указателя игнорируются.
func (s *ShieldSystem) SetFacing(pointerX float64) bool {
	if math.IsNaN(pointerX) || pointerX <= s.cfg.PointerMinX || pointerX >= s.cfg.PointerMaxX {
		return false
	}
	s.shield.SetFacingAngle(s.FacingFor(pointerX))
	return true
}

// AimHandler возвращает замыкание для подписки коллаборатора ввода.
// Оно трогает только угол щита.
func (s *ShieldSystem) AimHandler() func(pointerX float64) {
	return func(pointerX float64) {
		s.SetFacing(pointerX)
	}
}

// HitTest: пересечение с окружностью щита и, если включено, попадание в дугу.
func (s *ShieldSystem) HitTest(e *entity.Entity) bool {
	sh := s.shield
	if !utils.CirclesOverlap(sh.Center, sh.Radius, e.Position, e.Radius) {
		return false
	}
	if !sh.ArcContainment {
		return true
	}
	return utils.WithinArc(utils.AngleTo(sh.Center, e.Position), sh.Facing(), sh.ArcHalfWidth)
}

func (s *ShieldSystem) OnHit(e *entity.Entity) {
	if s.shield.Mode == config.ShieldTarget {
		s.eventDispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: event.Hit{Target: "shield", Entity: e}})
		return
	}

	e.Reversing = true
	e.ReversedAt = s.ecs.Tick
	e.Deflected = true
	e.Velocity.Negate()
	s.eventDispatcher.Dispatch(event.Event{Type: event.EntityDeflected, Data: e})
}
