package component

import (
	"math"
	"sync/atomic"

	"go-shield-defense/internal/config"
)

// Shield — дуга, которой управляет игрок.
// Угол хранится атомарно: обработчик ввода может писать его из другой горутины.
type Shield struct {
	Center         Position
	Radius         float64
	ArcHalfWidth   float64
	Mode           config.ShieldMode
	ArcContainment bool

	facing atomic.Uint64
}

// NewShield создаёт щит с начальным углом.
func NewShield(center Position, cfg config.ShieldConfig) *Shield {
	s := &Shield{
		Center:         center,
		Radius:         cfg.Radius,
		ArcHalfWidth:   cfg.ArcHalfWidth,
		Mode:           cfg.Mode,
		ArcContainment: cfg.ArcContainment,
	}
	s.SetFacingAngle(cfg.InitialFacing)
	return s
}

// Facing возвращает текущий угол в радианах.
func (s *Shield) Facing() float64 {
	return math.Float64frombits(s.facing.Load())
}

// SetFacingAngle записывает угол как есть, без нормализации.
func (s *Shield) SetFacingAngle(angle float64) {
	s.facing.Store(math.Float64bits(angle))
}

// Arc возвращает начальный и конечный углы дуги.
func (s *Shield) Arc() (start, end float64) {
	f := s.Facing()
	return f - s.ArcHalfWidth, f + s.ArcHalfWidth
}
