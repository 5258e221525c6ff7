package app

import (
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/system"
)

// Launcher builds fresh sessions from one tuning. A restart never reuses
// the previous engine.
type Launcher struct {
	Tuning  config.Tuning
	Seed    int64 // 0 — сид от времени для каждой сессии
	Metrics *system.Metrics

	sessions int64
}

// Launch creates the next session and attaches metrics to it.
// With a fixed seed the n-th session uses Seed+n, so a replay is reproducible.
func (l *Launcher) Launch() (*Game, error) {
	seed := l.Seed
	if seed != 0 {
		seed += l.sessions
	}
	g, err := NewGame(l.Tuning, seed)
	if err != nil {
		return nil, err
	}
	if l.Metrics != nil {
		l.Metrics.Attach(g.EventDispatcher)
	}
	l.sessions++
	return g, nil
}

// Sessions returns how many sessions were launched.
func (l *Launcher) Sessions() int64 {
	return l.sessions
}
