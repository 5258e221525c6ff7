package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-shield-defense/internal/component"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(component.Position{X: 0, Y: 0}, component.Position{X: 3, Y: 4}))
	assert.Equal(t, 0.0, Distance(component.Position{X: 7, Y: 7}, component.Position{X: 7, Y: 7}))
}

func TestCirclesOverlapStrict(t *testing.T) {
	a := component.Position{X: 0, Y: 0}

	// Ровное касание — не попадание.
	assert.False(t, CirclesOverlap(a, 10, component.Position{X: 30, Y: 0}, 20))
	// Чуть ближе — попадание.
	assert.True(t, CirclesOverlap(a, 10, component.Position{X: 30 - 0.0001, Y: 0}, 20))
	assert.False(t, CirclesOverlap(a, 10, component.Position{X: 100, Y: 0}, 20))
}

func TestAngleTo(t *testing.T) {
	c := component.Position{X: 400, Y: 240}
	assert.InDelta(t, 0, AngleTo(c, component.Position{X: 500, Y: 240}), 1e-12)
	assert.InDelta(t, math.Pi, AngleTo(c, component.Position{X: 300, Y: 240}), 1e-12)
	assert.InDelta(t, math.Pi/2, AngleTo(c, component.Position{X: 400, Y: 340}), 1e-12)
	assert.InDelta(t, -math.Pi/2, AngleTo(c, component.Position{X: 400, Y: 140}), 1e-12)
}
