// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-shield-defense/internal/app"
	"go-shield-defense/internal/config"
	"go-shield-defense/internal/defs"
	"go-shield-defense/internal/state"
	"go-shield-defense/internal/system"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "tuning YAML (defaults to $"+config.EnvConfigPath+")")
	variantsPath := flag.String("variants", "", "extra variant definitions (YAML list)")
	variantName := flag.String("variant", "classic", "rule set: "+strings.Join(defs.Names(), ", "))
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	debugAddr := flag.String("debug-addr", "", "serve pprof and /metrics on this address, e.g. localhost:6060")
	skipMenu := flag.Bool("skip-menu", false, "start straight into a game")
	flag.Parse()

	tuning, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *variantsPath != "" {
		if err := defs.LoadVariants(*variantsPath); err != nil {
			log.Fatal(err)
		}
	}
	variant, err := defs.Lookup(*variantName)
	if err != nil {
		log.Fatalf("%v (known: %s)", err, strings.Join(defs.Names(), ", "))
	}
	tuning = variant.ApplyTo(tuning)
	if err := tuning.Validate(); err != nil {
		log.Fatalf("variant %s: %v", variant.Name, err)
	}

	metrics, err := system.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal(err)
	}
	if *debugAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Println(http.ListenAndServe(*debugAddr, nil))
		}()
	}

	launcher := &app.Launcher{Tuning: tuning, Seed: *seed, Metrics: metrics}
	hud := state.NewHUD()
	sm := state.NewStateMachine() // Создаём машину состояний
	menu := state.NewMenuState(sm, launcher.Launch, hud, strings.ToUpper(variant.Name))
	sm.SetState(menu)
	if *skipMenu {
		if g, err := launcher.Launch(); err == nil {
			sm.SetState(state.NewGameState(sm, g, launcher.Launch, hud))
		} else {
			log.Fatal(err)
		}
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Shield Defense: " + variant.Name)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
