// internal/system/spawn.go
package system

import (
	"log"
	"math"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/entity"
	"go-shield-defense/internal/event"
)

// minAimDistance — ближе этого к центру направление не определено.
const minAimDistance = 1e-9

// Edge — край мира, у которого появляется частица.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rand — источник случайности для планирования появления.
type Rand interface {
	Float64() float64
	ChooseWeighted(weights []int) int
}

// SpawnPlan — где и с какой скоростью появится частица.
type SpawnPlan struct {
	Edge     Edge
	Position component.Position
	Velocity component.Velocity
}

// PlanSpawn выбирает край, точку сразу за ним и скорость к центру мира.
// Функция чистая: при одинаковом состоянии rng результат одинаковый.
func PlanSpawn(rng Rand, world config.WorldConfig, hostile config.HostileConfig) SpawnPlan {
	idx := rng.ChooseWeighted(hostile.EdgeWeights.Slice())
	if idx < 0 {
		idx = int(EdgeTop)
	}
	edge := Edge(idx)
	r := hostile.Radius

	var pos component.Position
	switch edge {
	case EdgeTop:
		pos = component.Position{X: rng.Float64() * world.Width, Y: -r}
	case EdgeBottom:
		pos = component.Position{X: rng.Float64() * world.Width, Y: world.Height + r}
	case EdgeLeft:
		pos = component.Position{X: -r, Y: sideY(rng, world.Height, hostile.SideBand)}
	case EdgeRight:
		pos = component.Position{X: world.Width + r, Y: sideY(rng, world.Height, hostile.SideBand)}
	}

	center := component.Position{X: world.CenterX(), Y: world.CenterY()}
	return SpawnPlan{
		Edge:     edge,
		Position: pos,
		Velocity: AimVelocity(pos, center, hostile.Speed, hostile.VelocityModel),
	}
}

// sideY выбирает высоту у бокового края: в полосе у верха или у низа.
func sideY(rng Rand, height, band float64) float64 {
	if band >= 1 {
		return rng.Float64() * height
	}
	upper := rng.Float64() < 0.5
	offset := height*band - rng.Float64()*height*band
	if upper {
		return offset
	}
	return height - offset
}

// AimVelocity строит скорость от from к center.
// proportional повторяет классическую формулу: смещение, делённое на полуширину,
// с поправкой на соотношение сторон по вертикали, что сохраняет направление.
// normalized даёт постоянную скорость; при совпадении точек возвращает нулевой вектор.
func AimVelocity(from, center component.Position, speed float64, model config.VelocityModel) component.Velocity {
	dx := center.X - from.X
	dy := center.Y - from.Y

	switch model {
	case config.VelocityProportional:
		if center.X <= 0 || center.Y <= 0 {
			return component.Velocity{}
		}
		aspect := center.Y / center.X
		return component.Velocity{
			VX: speed * (dx / center.X),
			VY: speed * (dy / center.Y) * aspect,
		}
	default:
		dist := math.Hypot(dx, dy)
		if dist < minAimDistance {
			return component.Velocity{}
		}
		return component.Velocity{
			VX: speed * dx / dist,
			VY: speed * dy / dist,
		}
	}
}

// FrequencyMs — интервал появления для уровня, не ниже пола.
func FrequencyMs(cfg config.SpawnConfig, level int) int {
	if level < 0 {
		level = 0
	}
	f := cfg.BaseMs - cfg.StepMs*level
	if f < cfg.FloorMs {
		return cfg.FloorMs
	}
	return f
}

// SpawnSystem порождает враждебные частицы не чаще одного раза за интервал.
type SpawnSystem struct {
	ecs             *entity.ECS
	world           config.WorldConfig
	hostile         config.HostileConfig
	spawn           config.SpawnConfig
	rng             Rand
	eventDispatcher *event.Dispatcher
	lastSpawnTime   float64
}

func NewSpawnSystem(ecs *entity.ECS, tuning config.Tuning, rng Rand, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		world:           tuning.World,
		hostile:         tuning.Hostile,
		spawn:           tuning.Spawn,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// LastSpawnTime возвращает метку последнего появления, мс.
func (s *SpawnSystem) LastSpawnTime() float64 {
	return s.lastSpawnTime
}

// MaybeSpawn создаёт частицу, если с прошлого появления прошло не меньше FrequencyMs(level).
func (s *SpawnSystem) MaybeSpawn(now float64, level int) (*entity.Entity, bool) {
	if now-s.lastSpawnTime < float64(FrequencyMs(s.spawn, level)) {
		return nil, false
	}

	plan := PlanSpawn(s.rng, s.world, s.hostile)
	e, err := s.ecs.Spawn(component.RoleHostile, plan.Position, plan.Velocity, s.hostile.Radius)
	if err != nil {
		log.Printf("Ошибка появления частицы у края %s: %v", plan.Edge, err)
		return nil, false
	}
	s.lastSpawnTime = now
	s.eventDispatcher.Dispatch(event.Event{Type: event.EntitySpawned, Data: e})
	return e, true
}
