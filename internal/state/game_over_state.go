// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-shield-defense/internal/app"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает последний кадр сессии под баннером. R — новая игра.
type GameOverState struct {
	sm     *StateMachine
	game   *app.Game
	launch Launch
	hud    *HUD
}

func NewGameOverState(sm *StateMachine, g *app.Game, launch Launch, hud *HUD) *GameOverState {
	return &GameOverState{sm: sm, game: g, launch: launch, hud: hud}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restart()
	}
}

func (s *GameOverState) restart() bool {
	return startGame(s.sm, s.launch, s.hud)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.hud.DrawSession(screen, s.game.Snapshot(), s.game.Tuning.Rules.LevelStep)
	s.hud.Banner.Draw(screen, config.BannerText, ui.ScoreLabel(s.game.Score()), "R to restart")
}

func (s *GameOverState) Exit() {}
