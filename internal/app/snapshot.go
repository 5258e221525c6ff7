package app

import (
	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/types"
)

// ShieldView — read-only копия щита для рендера.
type ShieldView struct {
	Center       component.Position
	Radius       float64
	Facing       float64
	ArcHalfWidth float64
	Mode         config.ShieldMode
}

// EntityView — read-only копия сущности для рендера.
type EntityView struct {
	ID        types.EntityID
	Position  component.Position
	Radius    float64
	Role      component.Role
	Reversing bool
}

// FlashView — вспышка отражения или попадания.
type FlashView struct {
	Position component.Position
	Progress float64 // 0 — только что, 1 — догорела
	Terminal bool
}

// Snapshot — всё, что нужно коллаборатору отрисовки для одного кадра.
type Snapshot struct {
	SessionID string
	Tick      uint64
	Shield    ShieldView
	Entities  []EntityView
	Flashes   []FlashView
	Score     int
	Level     int
	Running   bool
	Reason    string
}

// Snapshot copies the state so the renderer never touches live data.
func (g *Game) Snapshot() Snapshot {
	sh := g.ECS.Shield
	snap := Snapshot{
		SessionID: g.SessionID.String(),
		Tick:      g.ECS.Tick,
		Shield: ShieldView{
			Center:       sh.Center,
			Radius:       sh.Radius,
			Facing:       sh.Facing(),
			ArcHalfWidth: sh.ArcHalfWidth,
			Mode:         sh.Mode,
		},
		Entities: make([]EntityView, 0, len(g.ECS.Entities)),
		Score:    g.ECS.GameState.Score,
		Level:    g.ECS.GameState.Level,
		Running:  g.Running(),
		Reason:   g.StateSystem.Reason(),
	}
	for _, f := range g.EffectSystem.Flashes() {
		snap.Flashes = append(snap.Flashes, FlashView{
			Position: f.Position,
			Progress: f.Progress(g.ECS.GameTime),
			Terminal: f.Terminal,
		})
	}
	for _, e := range g.ECS.Entities {
		if !e.Alive {
			continue
		}
		snap.Entities = append(snap.Entities, EntityView{
			ID:        e.ID,
			Position:  e.Position,
			Radius:    e.Radius,
			Role:      e.Role,
			Reversing: e.Reversing,
		})
	}
	return snap
}
