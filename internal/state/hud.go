// internal/state/hud.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"go-shield-defense/internal/app"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/ui"
	"go-shield-defense/pkg/render"
)

// HUD — всё, что рисуется поверх снимка сессии. Общий для всех экранов.
type HUD struct {
	Renderer  *render.SceneRenderer
	Score     *ui.ScoreIndicator
	Level     *ui.LevelIndicator
	Indicator *ui.StateIndicator
	Banner    *ui.Banner
}

func NewHUD() *HUD {
	face := basicfont.Face7x13
	palette := render.DefaultPalette()
	return &HUD{
		Renderer: render.NewSceneRenderer(palette),
		Score:    ui.NewScoreIndicator(config.ScoreTextX, config.ScoreTextY, face, palette.Text),
		Level:    ui.NewLevelIndicator(config.LevelBarX, config.LevelBarY, face, palette.Text),
		Indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		Banner: ui.NewBanner(face, palette.Text, palette.Overlay),
	}
}

// DrawSession рисует сцену и индикаторы для снимка.
func (h *HUD) DrawSession(screen *ebiten.Image, snap app.Snapshot, levelStep int) {
	h.Renderer.Draw(screen, snap)
	h.Score.Draw(screen, snap.Score)
	h.Level.Draw(screen, snap.Level, snap.Score, levelStep)

	stateColor := config.RunningColor
	if !snap.Running {
		stateColor = config.GameOverColor
	}
	h.Indicator.Draw(screen, stateColor)
}
