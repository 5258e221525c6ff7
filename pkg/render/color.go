// pkg/render/color.go
package render

import (
	"image/color"

	"go-shield-defense/internal/app"
	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/types"
)

// Palette holds all the color definitions needed to draw a frame.
type Palette struct {
	Background color.RGBA
	Shield     color.RGBA
	Player     color.RGBA
	Text       color.RGBA
	Overlay    color.RGBA
	Hostiles   []color.RGBA
}

// DefaultPalette собирает палитру из цветов конфига.
func DefaultPalette() *Palette {
	return &Palette{
		Background: config.BackgroundColor,
		Shield:     config.ShieldColor,
		Player:     config.PlayerColor,
		Text:       config.TextColor,
		Overlay:    config.OverlayColor,
		Hostiles:   config.HostileColors,
	}
}

// EntityColor picks the fill for an entity. Hostile colors alternate by ID.
func (p *Palette) EntityColor(v app.EntityView, running bool) color.RGBA {
	c := p.Player
	if v.Role == component.RoleHostile && len(p.Hostiles) > 0 {
		c = p.Hostiles[v.ID%types.EntityID(len(p.Hostiles))]
	}
	if !running {
		return DarkenColor(c)
	}
	return c
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
