// pkg/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-shield-defense/internal/app"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/system"
	"go-shield-defense/internal/utils"
)

// SceneRenderer рисует снимок сессии: щит, ядро и частицы.
type SceneRenderer struct {
	palette  *Palette
	fillImg  *ebiten.Image
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewSceneRenderer(palette *Palette) *SceneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &SceneRenderer{
		palette:  palette,
		fillImg:  fillImg,
		strokeVs: make([]ebiten.Vertex, 0, 4*config.ArcSegments),
		strokeIs: make([]uint16, 0, 6*config.ArcSegments),
	}
}

// Palette возвращает палитру рендерера.
func (r *SceneRenderer) Palette() *Palette {
	return r.palette
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.palette.Background)

	for _, e := range snap.Entities {
		c := r.palette.EntityColor(e, snap.Running)
		vector.DrawFilledCircle(screen, float32(e.Position.X), float32(e.Position.Y), float32(e.Radius), c, true)
	}
	r.drawShield(screen, snap.Shield)
	for _, f := range snap.Flashes {
		r.drawFlash(screen, f)
	}
}

// drawFlash рисует кольцо, которое растёт и гаснет.
func (r *SceneRenderer) drawFlash(target *ebiten.Image, f app.FlashView) {
	base := r.palette.Shield
	if f.Terminal {
		base = config.GameOverColor
	}
	c := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(float64(base.A) * (1 - f.Progress))}
	radius := float32(system.FlashMaxRadius * utils.Lerp(0.2, 1, f.Progress))
	vector.StrokeCircle(target, float32(f.Position.X), float32(f.Position.Y), radius, 1, c, true)
}

func (r *SceneRenderer) drawShield(target *ebiten.Image, sh app.ShieldView) {
	if sh.Mode == config.ShieldTarget {
		vector.StrokeCircle(target, float32(sh.Center.X), float32(sh.Center.Y), float32(sh.Radius), config.ShieldStroke, r.palette.Shield, true)
		return
	}

	points := ArcPoints(sh.Center, sh.Radius, sh.Facing, sh.ArcHalfWidth, config.ArcSegments)
	path := vector.Path{}
	for i, p := range points {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    config.ShieldStroke,
		LineJoin: vector.LineJoinRound,
	})
	c := r.palette.Shield
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
