package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the variable consulted when Load gets an empty path.
const EnvConfigPath = "SHIELD_CONFIG"

var (
	ErrInvalidRadius    = errors.New("radius must be positive")
	ErrInvalidFrequency = errors.New("spawn frequency must be positive")
	ErrInvalidWorld     = errors.New("world size must be positive")
)

// Load reads a YAML tuning file on top of Default().
// An empty path falls back to SHIELD_CONFIG; with neither set the defaults are returned.
func Load(path string) (Tuning, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid tuning %s: %w", path, err)
	}

	log.Printf("Loaded tuning from %s", path)
	return cfg, nil
}

// Validate проверяет предусловия, без которых физика выдаст NaN или отрицательные значения.
func (t Tuning) Validate() error {
	if !positive(t.World.Width) || !positive(t.World.Height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidWorld, t.World.Width, t.World.Height)
	}
	if t.World.CullMargin < 0 {
		return fmt.Errorf("cull_margin must not be negative, got %v", t.World.CullMargin)
	}

	if !positive(t.Shield.Radius) {
		return fmt.Errorf("shield: %w, got %v", ErrInvalidRadius, t.Shield.Radius)
	}
	if t.Shield.ArcHalfWidth < 0 || math.IsNaN(t.Shield.ArcHalfWidth) {
		return fmt.Errorf("shield arc_half_width must not be negative, got %v", t.Shield.ArcHalfWidth)
	}
	switch t.Shield.Mode {
	case ShieldDeflector, ShieldTarget:
	default:
		return fmt.Errorf("unknown shield mode %q", t.Shield.Mode)
	}
	if t.Shield.PointerMinX > t.Shield.PointerMaxX {
		return fmt.Errorf("pointer window is empty: %v > %v", t.Shield.PointerMinX, t.Shield.PointerMaxX)
	}

	if t.Core.Enabled && !positive(t.Core.Radius) {
		return fmt.Errorf("core: %w, got %v", ErrInvalidRadius, t.Core.Radius)
	}

	if !positive(t.Hostile.Radius) {
		return fmt.Errorf("hostile: %w, got %v", ErrInvalidRadius, t.Hostile.Radius)
	}
	if t.Hostile.Speed < 0 || math.IsNaN(t.Hostile.Speed) {
		return fmt.Errorf("hostile speed must not be negative, got %v", t.Hostile.Speed)
	}
	switch t.Hostile.VelocityModel {
	case VelocityNormalized, VelocityProportional:
	default:
		return fmt.Errorf("unknown velocity model %q", t.Hostile.VelocityModel)
	}
	total := 0
	for _, w := range t.Hostile.EdgeWeights.Slice() {
		if w < 0 {
			return fmt.Errorf("edge weight must not be negative, got %d", w)
		}
		total += w
	}
	if total == 0 {
		return errors.New("at least one spawn edge must have a positive weight")
	}
	if t.Hostile.SideBand <= 0 || t.Hostile.SideBand > 1 {
		return fmt.Errorf("side_band must be in (0, 1], got %v", t.Hostile.SideBand)
	}

	if t.Spawn.BaseMs <= 0 || t.Spawn.FloorMs <= 0 {
		return fmt.Errorf("%w: base=%d floor=%d", ErrInvalidFrequency, t.Spawn.BaseMs, t.Spawn.FloorMs)
	}
	if t.Spawn.FloorMs > t.Spawn.BaseMs {
		return fmt.Errorf("floor_ms %d exceeds base_ms %d", t.Spawn.FloorMs, t.Spawn.BaseMs)
	}
	if t.Spawn.StepMs < 0 {
		return fmt.Errorf("step_ms must not be negative, got %d", t.Spawn.StepMs)
	}

	if t.Rules.ScoreIncrement < 0 {
		return fmt.Errorf("score_increment must not be negative, got %d", t.Rules.ScoreIncrement)
	}
	if t.Rules.LevelStep <= 0 {
		return fmt.Errorf("level_step must be positive, got %d", t.Rules.LevelStep)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
