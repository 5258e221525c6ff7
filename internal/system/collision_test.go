package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/entity"
	"go-shield-defense/internal/event"
)

func TestShieldDeflectsInsideArc(t *testing.T) {
	f := newFixture(t, config.Default())
	// Щит смотрит на π (влево), частица слева касается окружности щита.
	e := f.hostile(t, 400-99, 240, 5, 0)

	require.True(t, f.collision.Check(e))
	assert.Equal(t, component.Velocity{VX: -5, VY: 0}, e.Velocity)
	assert.True(t, e.Reversing)
	assert.True(t, e.Deflected)
	assert.Equal(t, 10, f.ecs.GameState.Score)
	assert.Equal(t, 1, f.count(event.EntityDeflected))
	assert.True(t, f.ecs.GameState.Running())
}

func TestShieldMissesOutsideArc(t *testing.T) {
	f := newFixture(t, config.Default())
	// Справа от центра: угол 0, дуга смотрит на π.
	e := f.hostile(t, 400+99, 240, -5, 0)

	assert.False(t, f.collision.Check(e))
	assert.Equal(t, component.Velocity{VX: -5}, e.Velocity)
	assert.Zero(t, f.ecs.GameState.Score)
}

func TestShieldTangencyIsNotAHit(t *testing.T) {
	f := newFixture(t, config.Default())
	e := f.hostile(t, 400-100, 240, 5, 0) // 75 + 25 ровно

	assert.False(t, f.collision.Check(e))
	e.Position.X = 400 - 100 + 0.0001
	assert.True(t, f.collision.Check(e))
}

func TestShieldArcFollowsPointer(t *testing.T) {
	f := newFixture(t, config.Default())
	e := f.hostile(t, 400+99, 240, -5, 0)

	// Указатель на 600: π + 2π/800*200 = 3π/2, т.е. -π/2 (вверх). Частица справа всё ещё вне дуги.
	require.True(t, f.shield.SetFacing(600))
	assert.False(t, f.collision.Check(e))

	// Чтобы дуга смотрела вправо, указатель должен стоять на 800, а это вне окна.
	assert.False(t, f.shield.SetFacing(800))
	f.ecs.Shield.SetFacingAngle(2 * math.Pi)
	assert.True(t, f.collision.Check(e))
}

func TestShieldWithoutArcContainment(t *testing.T) {
	tuning := config.Default()
	tuning.Shield.ArcContainment = false
	f := newFixture(t, tuning)
	e := f.hostile(t, 400+99, 240, -5, 0)

	assert.True(t, f.collision.Check(e))
	assert.Equal(t, 10, f.ecs.GameState.Score)
}

func TestShieldTargetModeEndsGame(t *testing.T) {
	tuning := config.Default()
	tuning.Shield.Mode = config.ShieldTarget
	f := newFixture(t, tuning)
	e := f.hostile(t, 400-99, 240, 5, 0)

	require.True(t, f.collision.Check(e))
	assert.False(t, f.ecs.GameState.Running())
	assert.Equal(t, "shield hit", f.state.Reason())
	assert.Equal(t, component.Velocity{VX: 5}, e.Velocity, "terminal hit does not deflect")
	assert.Zero(t, f.ecs.GameState.Score)
	assert.Equal(t, 1, f.count(event.GameOver))
}

func TestCheckExemptions(t *testing.T) {
	f := newFixture(t, config.Default())

	reversing := f.hostile(t, 400-99, 240, 5, 0)
	reversing.Reversing = true
	assert.False(t, f.collision.Check(reversing))

	dead := f.hostile(t, 400-99, 240, 5, 0)
	dead.Alive = false
	assert.False(t, f.collision.Check(dead))

	player, err := f.ecs.Spawn(component.RolePlayer, component.Position{X: 400, Y: 240}, component.Velocity{}, 45)
	require.NoError(t, err)
	assert.False(t, f.collision.Check(player))

	live := f.hostile(t, 400-99, 240, 5, 0)
	f.state.SwitchToGameOver("test")
	assert.False(t, f.collision.Check(live))

	assert.Zero(t, f.ecs.GameState.Score)
}

// countingTarget всегда попадает и считает вызовы.
type countingTarget struct {
	hits int
}

func (c *countingTarget) HitTest(*entity.Entity) bool { return true }
func (c *countingTarget) OnHit(*entity.Entity)        { c.hits++ }

func TestFirstRegisteredTargetWins(t *testing.T) {
	f := newFixture(t, config.Default())
	second := &countingTarget{}
	f.collision.AddTarget(second)
	require.Equal(t, 2, f.collision.Targets())

	// Попадает и в щит, и во вторую цель: срабатывает только щит.
	e := f.hostile(t, 400-99, 240, 5, 0)
	require.True(t, f.collision.Check(e))
	assert.Zero(t, second.hits)
	assert.Equal(t, 10, f.ecs.GameState.Score)

	// Вне дуги щита очередь доходит до второй цели.
	other := f.hostile(t, 400+99, 240, -5, 0)
	require.True(t, f.collision.Check(other))
	assert.Equal(t, 1, second.hits)

	f.collision.RemoveTarget(second)
	assert.Equal(t, 1, f.collision.Targets())
	assert.False(t, f.collision.Check(f.hostile(t, 400+99, 240, -5, 0)))
}

func TestReversingLastsOneTick(t *testing.T) {
	f := newFixture(t, config.Default())
	f.ecs.Tick = 7
	e := f.hostile(t, 400-99, 240, 5, 0)

	f.collision.Update()
	require.True(t, e.Reversing)
	assert.Equal(t, uint64(7), e.ReversedAt)

	// В тике отражения флаг остаётся.
	f.collision.Settle()
	assert.True(t, e.Reversing)

	// Следующий тик: частица всё ещё освобождена от проверок, в конце флаг снимается.
	f.ecs.Tick = 8
	e.Velocity = component.Velocity{VX: 5}
	f.collision.Update()
	assert.Equal(t, 10, f.ecs.GameState.Score)
	f.collision.Settle()
	assert.False(t, e.Reversing)

	f.ecs.Tick = 9
	f.collision.Update()
	assert.Equal(t, 20, f.ecs.GameState.Score)
}

func TestCollisionUpdateStopsAfterGameOver(t *testing.T) {
	tuning := config.Default()
	tuning.Shield.Mode = config.ShieldTarget
	f := newFixture(t, tuning)
	extra := &countingTarget{}
	f.collision.AddTarget(extra)

	f.hostile(t, 400-99, 240, 5, 0)   // попадает в щит, конец игры
	f.hostile(t, 400+300, 240, -5, 0) // попал бы во вторую цель

	f.collision.Update()
	assert.False(t, f.ecs.GameState.Running())
	assert.Zero(t, extra.hits)
	assert.Equal(t, 1, f.count(event.GameOver))
}
