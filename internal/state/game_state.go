// internal/state/game_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-shield-defense/internal/app"
)

// GameState — состояние игры: ведёт одну сессию, пока она не закончится.
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	launch    Launch
	hud       *HUD
	aim       func(pointerX float64)
	clock     float64 // мс с начала сессии, только пока не на паузе
	lastScore int
}

func NewGameState(sm *StateMachine, g *app.Game, launch Launch, hud *HUD) *GameState {
	return &GameState{
		sm:     sm,
		game:   g,
		launch: launch,
		hud:    hud,
		aim:    g.ShieldSystem.AimHandler(),
	}
}

// Game возвращает текущую сессию.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	x, _ := ebiten.CursorPosition()
	g.step(deltaTime, float64(x))
}

// step продвигает сессию на один кадр хоста.
func (g *GameState) step(deltaTime, pointerX float64) {
	g.aim(pointerX)
	g.clock += deltaTime * 1000
	g.game.Tick(g.clock)

	if score := g.game.Score(); score != g.lastScore {
		g.lastScore = score
		if g.hud != nil {
			g.hud.Indicator.Pulse(time.Now())
		}
	}
	if !g.game.Running() {
		g.sm.SetState(NewGameOverState(g.sm, g.game, g.launch, g.hud))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.hud.DrawSession(screen, g.game.Snapshot(), g.game.Tuning.Rules.LevelStep)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
