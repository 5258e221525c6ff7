package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		0:    "",
		-3:   "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for in, want := range cases {
		assert.Equal(t, want, toRoman(in), "toRoman(%d)", in)
	}
}

func TestProgress(t *testing.T) {
	assert.Zero(t, Progress(0, 100))
	assert.Equal(t, 0.5, Progress(150, 100))
	assert.Zero(t, Progress(200, 100))
	assert.Zero(t, Progress(50, 0))
}

func TestPulseScale(t *testing.T) {
	assert.InDelta(t, 1.3, PulseScale(0), 1e-9)
	assert.InDelta(t, 1.3, PulseScale(-1), 1e-9)
	assert.InDelta(t, 1.0, PulseScale(10), 1e-6)
	assert.Less(t, PulseScale(0.2), PulseScale(0.1))
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "Score: 120", ScoreLabel(120))
}
