// Package main provides the route binary: a terminal game where the player
// walks a route with a starter creature and battles wild creatures.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cory-johannsen/route1/internal/app"
	"github.com/cory-johannsen/route1/internal/config"
	"github.com/cory-johannsen/route1/internal/game/route"
	"github.com/cory-johannsen/route1/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	contentDir := flag.String("content", "", "path to a species directory with wild/ and starters/; empty = embedded catalog")
	seed := flag.Uint64("seed", 0, "non-zero seed for deterministic dice")
	simulate := flag.Int("simulate", 0, "run a headless journey of this many steps instead of the terminal UI")
	starter := flag.Int("starter", 1, "starter choice for -simulate")
	healBelow := flag.Int("heal-below", 40, "percent of max health under which -simulate heals")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Game.ContentDir = *contentDir
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	if *simulate <= 0 {
		cfg = app.TerminalSafe(cfg)
	}

	a, err := app.Initialize(cfg)
	if err != nil {
		log.Fatalf("initializing game: %v", err)
	}
	defer a.Logger.Sync()

	if *simulate > 0 {
		sum, err := route.Simulate(a.Journey, a.Engine, *starter, *simulate, route.Autopilot(*healBelow))
		if err != nil {
			a.Logger.Fatal("simulation failed", zap.Error(err))
		}
		fmt.Printf("starter=%s steps=%d battles=%d wins=%d level=%d fainted=%t\n",
			sum.Starter, sum.Steps, sum.Battles, sum.Wins, sum.Level, sum.Fainted)
		return
	}

	a.Logger.Info("starting route", zap.Uint64("seed", cfg.Game.Seed))
	final, err := tea.NewProgram(tui.New(a.Journey, a.Engine, a.Logger)).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "running terminal UI: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		os.Exit(1)
	}
}
