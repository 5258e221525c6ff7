// internal/system/visual_effect.go
package system

import (
	"go-shield-defense/internal/component"
	"go-shield-defense/internal/entity"
	"go-shield-defense/internal/event"
)

const (
	FlashDurationMs = 300.0
	FlashMaxRadius  = 20.0
)

// Flash — расходящееся кольцо в точке отражения или попадания.
type Flash struct {
	Position component.Position
	BornAt   float64 // мс игрового времени
	Terminal bool
}

// Progress — доля прожитого времени вспышки в момент now, [0, 1].
func (f Flash) Progress(now float64) float64 {
	p := (now - f.BornAt) / FlashDurationMs
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки отражений.
type VisualEffectSystem struct {
	ecs     *entity.ECS
	flashes []Flash
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.EntityDeflected, s)
	eventDispatcher.Subscribe(event.TargetHit, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	var ent *entity.Entity
	terminal := false
	switch data := e.Data.(type) {
	case *entity.Entity:
		ent = data
	case event.Hit:
		ent, _ = data.Entity.(*entity.Entity)
		terminal = true
	}
	if ent == nil {
		return
	}
	s.flashes = append(s.flashes, Flash{Position: ent.Position, BornAt: s.ecs.GameTime, Terminal: terminal})
}

// Update удаляет догоревшие вспышки.
func (s *VisualEffectSystem) Update(now float64) {
	kept := s.flashes[:0]
	for _, f := range s.flashes {
		if now-f.BornAt < FlashDurationMs {
			kept = append(kept, f)
		}
	}
	s.flashes = kept
}

// Flashes возвращает копию активных вспышек.
func (s *VisualEffectSystem) Flashes() []Flash {
	return append([]Flash(nil), s.flashes...)
}
