package system

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"go-shield-defense/internal/component"
	"go-shield-defense/internal/entity"
	"go-shield-defense/internal/event"
)

// Metrics переводит игровые события в метрики Prometheus.
type Metrics struct {
	Spawned   prometheus.Counter
	Deflected prometheus.Counter
	Culled    prometheus.Counter
	Escaped   prometheus.Counter
	GamesOver *prometheus.CounterVec
	Score     prometheus.Gauge
	Level     prometheus.Gauge
	Active    prometheus.Gauge
}

// NewMetrics создаёт и регистрирует коллекторы.
// Если коллектор с тем же именем уже зарегистрирован, используется существующий.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{}
	var err error
	if m.Spawned, err = registerCounter(reg, "shield_entities_spawned_total", "Hostile particles spawned"); err != nil {
		return nil, err
	}
	if m.Deflected, err = registerCounter(reg, "shield_deflections_total", "Particles deflected by the shield"); err != nil {
		return nil, err
	}
	if m.Culled, err = registerCounter(reg, "shield_entities_culled_total", "Entities removed from the active set"); err != nil {
		return nil, err
	}
	if m.Escaped, err = registerCounter(reg, "shield_entities_escaped_total", "Particles that left the world without being deflected"); err != nil {
		return nil, err
	}
	if m.Score, err = registerGauge(reg, "shield_score", "Score of the current session"); err != nil {
		return nil, err
	}
	if m.Level, err = registerGauge(reg, "shield_level", "Level of the current session"); err != nil {
		return nil, err
	}
	if m.Active, err = registerGauge(reg, "shield_active_entities", "Live hostile particles in the current session"); err != nil {
		return nil, err
	}

	gamesOver := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shield_games_over_total",
		Help: "Finished sessions by reason",
	}, []string{"reason"})
	if err := reg.Register(gamesOver); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		if gamesOver, ok = are.ExistingCollector.(*prometheus.CounterVec); !ok {
			return nil, errors.New("shield_games_over_total registered with a different type")
		}
	}
	m.GamesOver = gamesOver
	return m, nil
}

func registerCounter(reg prometheus.Registerer, name, help string) (prometheus.Counter, error) {
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
	if err := reg.Register(c); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(prometheus.Counter)
		if !ok {
			return nil, errors.New(name + " registered with a different type")
		}
		return existing, nil
	}
	return c, nil
}

func registerGauge(reg prometheus.Registerer, name, help string) (prometheus.Gauge, error) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	if err := reg.Register(g); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(prometheus.Gauge)
		if !ok {
			return nil, errors.New(name + " registered with a different type")
		}
		return existing, nil
	}
	return g, nil
}

// Attach подписывает метрики на события новой сессии и обнуляет её гейджи.
func (m *Metrics) Attach(d *event.Dispatcher) {
	m.Score.Set(0)
	m.Level.Set(0)
	m.Active.Set(0)
	for _, t := range []event.EventType{
		event.EntitySpawned, event.EntityDeflected, event.EntityCulled,
		event.EntityEscaped, event.ScoreChanged, event.LevelUp, event.GameOver,
	} {
		d.Subscribe(t, m)
	}
}

func (m *Metrics) OnEvent(e event.Event) {
	switch e.Type {
	case event.EntitySpawned:
		m.Spawned.Inc()
		m.Active.Inc()
	case event.EntityDeflected:
		m.Deflected.Inc()
	case event.EntityCulled:
		m.Culled.Inc()
		if ent, ok := e.Data.(*entity.Entity); ok && ent.Role == component.RoleHostile {
			m.Active.Dec()
		}
	case event.EntityEscaped:
		m.Escaped.Inc()
	case event.ScoreChanged:
		if score, ok := e.Data.(int); ok {
			m.Score.Set(float64(score))
		}
	case event.LevelUp:
		if level, ok := e.Data.(int); ok {
			m.Level.Set(float64(level))
		}
	case event.GameOver:
		reason, _ := e.Data.(string)
		m.GamesOver.WithLabelValues(reason).Inc()
	}
}
