// internal/system/collision.go
package system

import (
	"go-shield-defense/internal/component"
	"go-shield-defense/internal/entity"
)

// Target — то, во что может попасть частица: щит или ядро игрока.
type Target interface {
	HitTest(e *entity.Entity) bool
	OnHit(e *entity.Entity)
}

// CollisionSystem проверяет попадания частиц в зарегистрированные цели.
// Порядок регистрации решает, какая цель сработает при одновременном попадании.
type CollisionSystem struct {
	ecs     *entity.ECS
	targets []Target
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{ecs: ecs}
}

func (s *CollisionSystem) AddTarget(t Target) {
	s.targets = append(s.targets, t)
}

func (s *CollisionSystem) RemoveTarget(t Target) {
	for i, target := range s.targets {
		if target == t {
			s.targets = append(s.targets[:i], s.targets[i+1:]...)
			return
		}
	}
}

// Targets возвращает число зарегистрированных целей.
func (s *CollisionSystem) Targets() int {
	return len(s.targets)
}

// Check прогоняет одну сущность по целям. Срабатывает не больше одного эффекта.
func (s *CollisionSystem) Check(e *entity.Entity) bool {
	if !e.Alive || e.Reversing || e.Role == component.RolePlayer || !s.ecs.GameState.Running() {
		return false
	}
	for _, t := range s.targets {
		if t.HitTest(e) {
			t.OnHit(e)
			return true
		}
	}
	return false
}

// Update проверяет все живые сущности, пока игра не окончена.
func (s *CollisionSystem) Update() {
	for _, e := range s.ecs.Entities {
		if !s.ecs.GameState.Running() {
			return
		}
		s.Check(e)
	}
}

// Settle снимает флаг Reversing у сущностей, отражённых до текущего тика.
func (s *CollisionSystem) Settle() {
	for _, e := range s.ecs.Entities {
		if e.Reversing && e.ReversedAt < s.ecs.Tick {
			e.Reversing = false
		}
	}
}
