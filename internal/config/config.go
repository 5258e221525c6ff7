// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 480
	MaxDeltaTime = 0.06 // секунды, верхняя граница шага хоста

	ScoreTextX   = 20
	ScoreTextY   = 40
	BannerText   = "BOOM"
	ArcSegments  = 32  // сегментов на отрисовку дуги щита
	ShieldStroke = 2.0 // толщина линии щита

	LevelBarX        = 20
	LevelBarY        = 56
	IndicatorOffsetX = 30
	IndicatorRadius  = 8
)

// ShieldMode — поведение щита при столкновении
type ShieldMode string

const (
	// ShieldDeflector отражает частицу и начисляет очки.
	ShieldDeflector ShieldMode = "deflector"
	// ShieldTarget завершает игру при касании.
	ShieldTarget ShieldMode = "target"
)

// VelocityModel — способ вычисления начальной скорости частицы
type VelocityModel string

const (
	// VelocityNormalized — единичный вектор к центру, умноженный на скорость.
	VelocityNormalized VelocityModel = "normalized"
	// VelocityProportional — смещение от центра, делённое на полуширину мира.
	VelocityProportional VelocityModel = "proportional"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	ShieldColor     = color.RGBA{255, 255, 255, 255}
	PlayerColor     = color.RGBA{0, 0, 255, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	RunningColor    = color.RGBA{60, 180, 90, 255}
	GameOverColor   = color.RGBA{200, 40, 40, 255}
	HostileColors   = []color.RGBA{
		{255, 102, 0, 255}, // оранжевый
		{0, 136, 136, 255}, // бирюзовый
	}
)

// Tuning holds every gameplay constant of a session.
type Tuning struct {
	World   WorldConfig   `yaml:"world"`
	Shield  ShieldConfig  `yaml:"shield"`
	Core    CoreConfig    `yaml:"core"`
	Hostile HostileConfig `yaml:"hostile"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Rules   RulesConfig   `yaml:"rules"`
}

type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CullMargin float64 `yaml:"cull_margin"`
}

// CenterX returns the horizontal world center.
func (w WorldConfig) CenterX() float64 { return w.Width / 2 }

// CenterY returns the vertical world center.
func (w WorldConfig) CenterY() float64 { return w.Height / 2 }

type ShieldConfig struct {
	Mode           ShieldMode `yaml:"mode"`
	Radius         float64    `yaml:"radius"`
	ArcHalfWidth   float64    `yaml:"arc_half_width"`
	ArcContainment bool       `yaml:"arc_containment"`
	Sensitivity    float64    `yaml:"sensitivity"`    // радиан на пиксель указателя
	PointerMinX    float64    `yaml:"pointer_min_x"`  // события левее игнорируются
	PointerMaxX    float64    `yaml:"pointer_max_x"`  // события правее игнорируются
	InitialFacing  float64    `yaml:"initial_facing"` // радианы
}

type CoreConfig struct {
	Enabled bool    `yaml:"enabled"`
	Radius  float64 `yaml:"radius"`
}

// EdgeWeights задаёт относительную вероятность появления у каждого края.
type EdgeWeights struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// Slice returns the weights in top, bottom, left, right order.
func (e EdgeWeights) Slice() []int {
	return []int{e.Top, e.Bottom, e.Left, e.Right}
}

type HostileConfig struct {
	Radius        float64       `yaml:"radius"`
	Speed         float64       `yaml:"speed"` // единиц за тик
	VelocityModel VelocityModel `yaml:"velocity_model"`
	EdgeWeights   EdgeWeights   `yaml:"edge_weights"`
	SideBand      float64       `yaml:"side_band"` // доля высоты у боковых краёв
}

type SpawnConfig struct {
	BaseMs  int `yaml:"base_ms"`
	StepMs  int `yaml:"step_ms"`
	FloorMs int `yaml:"floor_ms"`
}

type RulesConfig struct {
	ScoreIncrement int  `yaml:"score_increment"`
	LevelStep      int  `yaml:"level_step"`
	EscapeEndsGame bool `yaml:"escape_ends_game"`
}

// Default returns the tuning of the classic game.
func Default() Tuning {
	return Tuning{
		World: WorldConfig{
			Width:      ScreenWidth,
			Height:     ScreenHeight,
			CullMargin: 1,
		},
		Shield: ShieldConfig{
			Mode:           ShieldDeflector,
			Radius:         75,
			ArcHalfWidth:   math.Pi / 4,
			ArcContainment: true,
			Sensitivity:    2 * math.Pi / ScreenWidth,
			PointerMinX:    100,
			PointerMaxX:    700,
			InitialFacing:  math.Pi,
		},
		Core: CoreConfig{
			Enabled: true,
			Radius:  45,
		},
		Hostile: HostileConfig{
			Radius:        25,
			Speed:         5,
			VelocityModel: VelocityNormalized,
			EdgeWeights:   EdgeWeights{Top: 1, Bottom: 1, Left: 1, Right: 1},
			SideBand:      1.0 / 6,
		},
		Spawn: SpawnConfig{
			BaseMs:  1500,
			StepMs:  100,
			FloorMs: 300,
		},
		Rules: RulesConfig{
			ScoreIncrement: 10,
			LevelStep:      100,
		},
	}
}
