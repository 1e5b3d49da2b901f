package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/cave-copter/config"
	"github.com/lixenwraith/cave-copter/core"
	"github.com/lixenwraith/cave-copter/engine"
	"github.com/lixenwraith/cave-copter/gui"
	"github.com/lixenwraith/cave-copter/manifest"
)

var (
	configFlag = flag.String("config", "cave-copter.toml", "Path to the game config file")
	debugFlag  = flag.Bool("debug", false, "Show the metrics overlay")
	craftFlag  = flag.String("craft", "", "Craft variant override")
	scaleFlag  = flag.Float64("scale", 1, "Initial window scale")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *craftFlag != "" {
		cfg.Craft.Variant = *craftFlag
		if err := cfg.Validate(); err != nil {
			log.Fatalf("craft: %v", err)
		}
	}

	game, err := manifest.Assemble(cfg, engine.MonotonicClock{})
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	defer game.Close()

	w, h := game.Session.Size()
	scale := max(*scaleFlag, 0.25)
	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle("Cave Copter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.FPS)

	g := gui.NewGame(game.Session, game.Scheduler, game.Registry, game.Board, game.Sound, *debugFlag || cfg.Debug.Log)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Printf("run: %v", err)
		game.Close()
		os.Exit(1)
	}
}
