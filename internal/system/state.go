// internal/system/state.go
package system

import (
	"log"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/event"
)

// StateSystem переводит игру в GameOver. Из GameOver выхода нет.
type StateSystem struct {
	state           *component.GameState
	rules           config.RulesConfig
	eventDispatcher *event.Dispatcher
	reason          string
}

func NewStateSystem(state *component.GameState, rules config.RulesConfig, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		state:           state,
		rules:           rules,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.TargetHit, ss)
	eventDispatcher.Subscribe(event.EntityEscaped, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetHit:
		reason := "hit"
		if hit, ok := e.Data.(event.Hit); ok {
			reason = hit.Target + " hit"
		}
		s.SwitchToGameOver(reason)
	case event.EntityEscaped:
		if s.rules.EscapeEndsGame {
			s.SwitchToGameOver("escape")
		}
	}
}

// SwitchToGameOver фиксирует конец игры. Повторные вызовы ничего не меняют.
func (s *StateSystem) SwitchToGameOver(reason string) {
	if s.state.Phase == component.GameOver {
		return
	}
	s.state.Phase = component.GameOver
	s.reason = reason
	log.Printf("Игра окончена (%s): счёт %d, уровень %d", reason, s.state.Score, s.state.Level)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: reason})
}

// Reason возвращает причину окончания игры или пустую строку.
func (s *StateSystem) Reason() string {
	return s.reason
}

func (s *StateSystem) Current() component.Phase {
	return s.state.Phase
}
