package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/entity"
	"go-shield-defense/internal/event"
)

// fixture собирает системы так же, как это делает app.Game, но без ядра.
type fixture struct {
	tuning     config.Tuning
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	shield     *ShieldSystem
	collision  *CollisionSystem
	score      *ScoreSystem
	state      *StateSystem
	movement   *MovementSystem
	events     []event.Event
}

func newFixture(t *testing.T, tuning config.Tuning) *fixture {
	t.Helper()
	require.NoError(t, tuning.Validate())

	ecs := entity.NewECS()
	ecs.Shield = component.NewShield(component.Position{X: tuning.World.CenterX(), Y: tuning.World.CenterY()}, tuning.Shield)
	d := event.NewDispatcher()

	f := &fixture{tuning: tuning, ecs: ecs, dispatcher: d}
	for _, et := range []event.EventType{
		event.EntitySpawned, event.EntityDeflected, event.TargetHit, event.EntityEscaped,
		event.ScoreChanged, event.LevelUp, event.GameOver,
	} {
		d.Subscribe(et, event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) }))
	}
	f.shield = NewShieldSystem(ecs, tuning.Shield, tuning.World, d)
	f.collision = NewCollisionSystem(ecs)
	f.collision.AddTarget(f.shield)
	f.score = NewScoreSystem(ecs.GameState, tuning.Rules, d)
	f.state = NewStateSystem(ecs.GameState, tuning.Rules, d)
	f.movement = NewMovementSystem(ecs, tuning.World, d)
	return f
}

func (f *fixture) hostile(t *testing.T, x, y, vx, vy float64) *entity.Entity {
	t.Helper()
	e, err := f.ecs.Spawn(component.RoleHostile, component.Position{X: x, Y: y}, component.Velocity{VX: vx, VY: vy}, f.tuning.Hostile.Radius)
	require.NoError(t, err)
	return e
}

func (f *fixture) count(et event.EventType) int {
	n := 0
	for _, e := range f.events {
		if e.Type == et {
			n++
		}
	}
	return n
}

// scriptedRand выдаёт заранее заданные значения.
type scriptedRand struct {
	edge   int
	floats []float64
	i      int
}

func (r *scriptedRand) ChooseWeighted([]int) int { return r.edge }

func (r *scriptedRand) Float64() float64 {
	v := r.floats[r.i%len(r.floats)]
	r.i++
	return v
}
