package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/defs"
	"go-shield-defense/internal/entity"
)

func newTestGame(t *testing.T, tuning config.Tuning) *Game {
	t.Helper()
	g, err := NewGame(tuning, 42)
	require.NoError(t, err)
	return g
}

func addHostile(t *testing.T, g *Game, x, y, vx, vy float64) *entity.Entity {
	t.Helper()
	e, err := g.ECS.Spawn(component.RoleHostile, component.Position{X: x, Y: y}, component.Velocity{VX: vx, VY: vy}, g.Tuning.Hostile.Radius)
	require.NoError(t, err)
	return e
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, config.Default())

	assert.True(t, g.Running())
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Level())
	assert.Equal(t, math.Pi, g.ECS.Shield.Facing())
	require.NotNil(t, g.Core)
	assert.Equal(t, 2, g.CollisionSystem.Targets())
	assert.Equal(t, 1, g.ECS.Count(component.RolePlayer))
	assert.Equal(t, int64(42), g.Rng.Seed())
}

func TestNewGameRejectsInvalidTuning(t *testing.T) {
	tuning := config.Default()
	tuning.Shield.Radius = 0

	_, err := NewGame(tuning, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidRadius)
}

func TestDeflectionScenario(t *testing.T) {
	g := newTestGame(t, config.Default())
	e := addHostile(t, g, 280, 240, 5, 0)

	for now := 1.0; now <= 4; now++ {
		g.Tick(now)
	}
	assert.Equal(t, 5.0, e.Velocity.VX, "ещё не долетела")
	assert.Zero(t, g.Score())

	g.Tick(5)
	assert.Equal(t, 305.0, e.Position.X)
	assert.Equal(t, -5.0, e.Velocity.VX)
	assert.True(t, e.Reversing)
	assert.Equal(t, 10, g.Score())
	assert.Equal(t, 0, g.Level())
	assert.True(t, g.Running())

	g.Tick(6)
	assert.Equal(t, 300.0, e.Position.X)
	assert.False(t, e.Reversing)
	assert.Equal(t, 10, g.Score(), "уходящая частица не отражается повторно")
}

func TestCoreHitEndsGame(t *testing.T) {
	g := newTestGame(t, config.Default())
	core := g.Core.Entity()
	// Справа, против дуги щита.
	e := addHostile(t, g, 560, 240, -5, 0)

	for now := 1.0; now <= 18; now++ {
		g.Tick(now)
	}
	require.True(t, g.Running())

	g.Tick(19)
	assert.False(t, g.Running())
	assert.Equal(t, "core hit", g.StateSystem.Reason())
	assert.False(t, core.Alive)
	assert.True(t, e.Alive, "ядро поглощается, частица остаётся")
	assert.Equal(t, 1, g.CollisionSystem.Targets())
	assert.Zero(t, g.ECS.Count(component.RolePlayer))
}

func TestGameOverIsAbsorbing(t *testing.T) {
	g := newTestGame(t, config.Default())
	e := addHostile(t, g, 560, 240, -5, 0)
	for now := 1.0; now <= 19; now++ {
		g.Tick(now)
	}
	require.False(t, g.Running())

	tick := g.ECS.Tick
	pos := e.Position
	for now := 2000.0; now < 10000; now += 100 {
		g.Tick(now)
	}
	assert.Equal(t, tick, g.ECS.Tick)
	assert.Equal(t, pos, e.Position)
	assert.Equal(t, 1, g.ECS.Count(component.RoleHostile), "новые частицы не появляются")
}

func TestShieldTargetVariant(t *testing.T) {
	v, err := defs.Lookup("bastion")
	require.NoError(t, err)
	g := newTestGame(t, v.ApplyTo(config.Default()))
	assert.Nil(t, g.Core)

	addHostile(t, g, 400, 100, 0, 5)
	for now := 1.0; now <= 20 && g.Running(); now++ {
		g.Tick(now)
	}
	assert.False(t, g.Running())
	assert.Equal(t, "shield hit", g.StateSystem.Reason())
	assert.Zero(t, g.Score())
}

func TestCrosswindEscapeEndsGame(t *testing.T) {
	v, err := defs.Lookup("crosswind")
	require.NoError(t, err)
	g := newTestGame(t, v.ApplyTo(config.Default()))

	addHostile(t, g, 10, 50, -5, 0)
	for now := 1.0; now <= 7; now++ {
		g.Tick(now)
	}
	require.True(t, g.Running())

	g.Tick(8)
	assert.False(t, g.Running())
	assert.Equal(t, "escape", g.StateSystem.Reason())
}

func TestSpawnTiming(t *testing.T) {
	g := newTestGame(t, config.Default())

	g.Tick(1499)
	assert.Zero(t, g.ECS.Count(component.RoleHostile))

	g.Tick(1500)
	assert.Equal(t, 1, g.ECS.Count(component.RoleHostile))
	assert.Equal(t, 1500.0, g.SpawnSystem.LastSpawnTime())

	g.Tick(2999)
	assert.Equal(t, 1, g.ECS.Count(component.RoleHostile))
}

func TestSetFacingWindow(t *testing.T) {
	g := newTestGame(t, config.Default())

	assert.False(t, g.SetFacing(100))
	assert.False(t, g.SetFacing(700))
	assert.Equal(t, math.Pi, g.ECS.Shield.Facing())

	assert.True(t, g.SetFacing(500))
	assert.InDelta(t, math.Pi+math.Pi/4, g.ECS.Shield.Facing(), 1e-9)

	assert.True(t, g.SetFacing(400))
	assert.InDelta(t, math.Pi, g.ECS.Shield.Facing(), 1e-9)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, config.Default())
	e := addHostile(t, g, 100, 100, 1, 1)

	snap := g.Snapshot()
	require.Len(t, snap.Entities, 2)
	assert.Equal(t, g.SessionID.String(), snap.SessionID)
	assert.Equal(t, component.RolePlayer, snap.Entities[0].Role)
	assert.Equal(t, e.ID, snap.Entities[1].ID)
	assert.True(t, snap.Running)
	assert.Equal(t, 75.0, snap.Shield.Radius)

	g.Tick(1)
	g.SetFacing(500)
	assert.Equal(t, 100.0, snap.Entities[1].Position.X)
	assert.Equal(t, math.Pi, snap.Shield.Facing)
	assert.Zero(t, snap.Tick)
}
