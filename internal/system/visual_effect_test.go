package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shield-defense/internal/config"
	"go-shield-defense/internal/event"
)

func TestFlashOnDeflection(t *testing.T) {
	f := newFixture(t, config.Default())
	effects := NewVisualEffectSystem(f.ecs, f.dispatcher)

	f.ecs.GameTime = 1000
	e := f.hostile(t, 400-99, 240, 5, 0)
	require.True(t, f.collision.Check(e))

	flashes := effects.Flashes()
	require.Len(t, flashes, 1)
	assert.Equal(t, e.Position, flashes[0].Position)
	assert.False(t, flashes[0].Terminal)
	assert.InDelta(t, 0.5, flashes[0].Progress(1150), 1e-9)

	effects.Update(1299)
	assert.Len(t, effects.Flashes(), 1)
	effects.Update(1300)
	assert.Empty(t, effects.Flashes())
}

func TestTerminalFlash(t *testing.T) {
	f := newFixture(t, config.Default())
	effects := NewVisualEffectSystem(f.ecs, f.dispatcher)
	e := f.hostile(t, 10, 10, 0, 0)

	f.dispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: event.Hit{Target: "core", Entity: e}})
	f.dispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: event.Hit{Target: "core"}})

	flashes := effects.Flashes()
	require.Len(t, flashes, 1)
	assert.True(t, flashes[0].Terminal)
	assert.Zero(t, flashes[0].Progress(-5))
	assert.Equal(t, 1.0, flashes[0].Progress(10_000))
}
