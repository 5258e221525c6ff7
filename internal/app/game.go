// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/entity"
	"go-shield-defense/internal/event"
	"go-shield-defense/internal/system"
	"go-shield-defense/internal/utils"
)

// Game holds one session of the simulation and advances it tick by tick.
type Game struct {
	SessionID       uuid.UUID
	Tuning          config.Tuning
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	ShieldSystem    *system.ShieldSystem
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	CollisionSystem *system.CollisionSystem
	ScoreSystem     *system.ScoreSystem
	StateSystem     *system.StateSystem
	EffectSystem    *system.VisualEffectSystem
	Core            *system.CoreTarget // nil, если ядро отключено
}

// NewGame validates the tuning and builds a running session.
// Seed 0 picks a time-based seed.
func NewGame(tuning config.Tuning, seed int64) (*Game, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	ecs := entity.NewECS()
	center := component.Position{X: tuning.World.CenterX(), Y: tuning.World.CenterY()}
	ecs.Shield = component.NewShield(center, tuning.Shield)

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		SessionID:       uuid.New(),
		Tuning:          tuning,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
	}
	g.ShieldSystem = system.NewShieldSystem(ecs, tuning.Shield, tuning.World, eventDispatcher)
	g.SpawnSystem = system.NewSpawnSystem(ecs, tuning, g.Rng, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, tuning.World, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(ecs)
	g.ScoreSystem = system.NewScoreSystem(ecs.GameState, tuning.Rules, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs.GameState, tuning.Rules, eventDispatcher)
	g.EffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)

	// Щит регистрируется первым: при одновременном попадании он важнее ядра.
	g.CollisionSystem.AddTarget(g.ShieldSystem)
	if tuning.Core.Enabled {
		if err := g.createCore(center); err != nil {
			return nil, err
		}
	}

	log.Printf("Сессия %s: режим щита %s, сид %d", g.SessionID, tuning.Shield.Mode, g.Rng.Seed())
	return g, nil
}

func (g *Game) createCore(center component.Position) error {
	core, err := g.ECS.Spawn(component.RolePlayer, center, component.Velocity{}, g.Tuning.Core.Radius)
	if err != nil {
		return fmt.Errorf("failed to create core: %w", err)
	}
	g.Core = system.NewCoreTarget(core, g.CollisionSystem, g.EventDispatcher)
	g.CollisionSystem.AddTarget(g.Core)
	return nil
}

// Tick advances the session by exactly one logical step.
// now is the host timestamp in milliseconds; it only drives spawn timing.
func (g *Game) Tick(now float64) {
	if !g.Running() {
		return
	}
	g.ECS.Tick++
	g.ECS.GameTime = now

	g.EffectSystem.Update(now)
	g.SpawnSystem.MaybeSpawn(now, g.ECS.GameState.Level)
	g.MovementSystem.Update()
	g.CollisionSystem.Update()
	g.CollisionSystem.Settle()
	g.cleanupDestroyedEntities()
	g.ScoreSystem.RecomputeLevel()
}

func (g *Game) cleanupDestroyedEntities() {
	for _, e := range g.ECS.Cull() {
		g.EventDispatcher.Dispatch(event.Event{Type: event.EntityCulled, Data: e})
	}
}

// SetFacing is the only input entry point: a horizontal pointer coordinate.
func (g *Game) SetFacing(pointerX float64) bool {
	return g.ShieldSystem.SetFacing(pointerX)
}

// Running reports whether the session still processes logic.
func (g *Game) Running() bool {
	return g.ECS.GameState.Running()
}

func (g *Game) Score() int { return g.ECS.GameState.Score }
func (g *Game) Level() int { return g.ECS.GameState.Level }
