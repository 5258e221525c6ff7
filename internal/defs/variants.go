package defs

import (
	"errors"
	"fmt"
	"sort"

	"go-shield-defense/internal/config"
)

// ErrUnknownVariant is returned by Lookup for a name missing from Variants.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant overrides the parts of the tuning that distinguish one rule set from another.
// Nil fields leave the tuning untouched.
type Variant struct {
	Name           string              `yaml:"name"`
	Description    string              `yaml:"description"`
	ShieldMode     config.ShieldMode   `yaml:"shield_mode"`
	ArcContainment *bool               `yaml:"arc_containment"`
	CoreEnabled    *bool               `yaml:"core_enabled"`
	EdgeWeights    *config.EdgeWeights `yaml:"edge_weights"`
	EscapeEndsGame *bool               `yaml:"escape_ends_game"`
}

// Variants is the library of rule sets, keyed by name.
var Variants = map[string]Variant{
	"classic": {
		Name:           "classic",
		Description:    "Deflecting shield around a fragile core, gusts from all four edges",
		ShieldMode:     config.ShieldDeflector,
		ArcContainment: boolPtr(true),
		CoreEnabled:    boolPtr(true),
		EdgeWeights:    &config.EdgeWeights{Top: 1, Bottom: 1, Left: 1, Right: 1},
		EscapeEndsGame: boolPtr(false),
	},
	"bastion": {
		Name:           "bastion",
		Description:    "The shield itself is the target: any touch ends the game",
		ShieldMode:     config.ShieldTarget,
		ArcContainment: boolPtr(false),
		CoreEnabled:    boolPtr(false),
		EdgeWeights:    &config.EdgeWeights{Top: 1, Bottom: 1, Left: 1, Right: 1},
		EscapeEndsGame: boolPtr(false),
	},
	"crosswind": {
		Name:           "crosswind",
		Description:    "Gusts only from the sides; one that slips past undeflected ends the game",
		ShieldMode:     config.ShieldDeflector,
		ArcContainment: boolPtr(true),
		CoreEnabled:    boolPtr(false),
		EdgeWeights:    &config.EdgeWeights{Left: 1, Right: 1},
		EscapeEndsGame: boolPtr(true),
	},
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, error) {
	v, ok := Variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// Names lists the registered variants in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(Variants))
	for name := range Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTo returns a copy of t with the variant's overrides.
func (v Variant) ApplyTo(t config.Tuning) config.Tuning {
	if v.ShieldMode != "" {
		t.Shield.Mode = v.ShieldMode
	}
	if v.ArcContainment != nil {
		t.Shield.ArcContainment = *v.ArcContainment
	}
	if v.CoreEnabled != nil {
		t.Core.Enabled = *v.CoreEnabled
	}
	if v.EdgeWeights != nil {
		t.Hostile.EdgeWeights = *v.EdgeWeights
	}
	if v.EscapeEndsGame != nil {
		t.Rules.EscapeEndsGame = *v.EscapeEndsGame
	}
	return t
}

func boolPtr(b bool) *bool { return &b }
