// internal/state/menu_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-shield-defense/internal/app"
)

// Launch создаёт новую игровую сессию.
type Launch func() (*app.Game, error)

// MenuState — стартовый экран, Space запускает игру.
type MenuState struct {
	sm     *StateMachine
	launch Launch
	hud    *HUD
	title  string
}

func NewMenuState(sm *StateMachine, launch Launch, hud *HUD, title string) *MenuState {
	return &MenuState{sm: sm, launch: launch, hud: hud, title: title}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.start()
	}
}

func (m *MenuState) start() {
	startGame(m.sm, m.launch, m.hud)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(m.hud.Renderer.Palette().Background)
	m.hud.Banner.Draw(screen, m.title, "Space to start")
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

// startGame запускает новую сессию; при ошибке остаёмся в текущем состоянии.
func startGame(sm *StateMachine, launch Launch, hud *HUD) bool {
	g, err := launch()
	if err != nil {
		log.Printf("Не удалось начать игру: %v", err)
		return false
	}
	sm.SetState(NewGameState(sm, g, launch, hud))
	return true
}
