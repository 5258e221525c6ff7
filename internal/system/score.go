package system

import (
	"log"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/event"
)

// ScoreSystem начисляет очки за отражения и пересчитывает уровень.
type ScoreSystem struct {
	state           *component.GameState
	rules           config.RulesConfig
	eventDispatcher *event.Dispatcher
}

func NewScoreSystem(state *component.GameState, rules config.RulesConfig, eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{
		state:           state,
		rules:           rules,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EntityDeflected, s)
	return s
}

// LevelFor — уровень для счёта: floor(score / step).
func LevelFor(score, step int) int {
	if step <= 0 || score <= 0 {
		return 0
	}
	return score / step
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ScoreSystem) OnEvent(e event.Event) {
	if e.Type != event.EntityDeflected || !s.state.Running() {
		return
	}
	s.state.Score += s.rules.ScoreIncrement
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: s.state.Score})
	s.RecomputeLevel()
}

// RecomputeLevel выводит уровень из счёта и сообщает о повышении.
func (s *ScoreSystem) RecomputeLevel() {
	level := LevelFor(s.state.Score, s.rules.LevelStep)
	if level == s.state.Level {
		return
	}
	s.state.Level = level
	log.Printf("Уровень %d (счёт %d)", level, s.state.Score)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: level})
}
