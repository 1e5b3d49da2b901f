package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/cave-copter/config"
	"github.com/lixenwraith/cave-copter/core"
	"github.com/lixenwraith/cave-copter/engine"
	"github.com/lixenwraith/cave-copter/leaderboard"
	"github.com/lixenwraith/cave-copter/manifest"
	"github.com/lixenwraith/cave-copter/parameter"
	"github.com/lixenwraith/cave-copter/render"
)

// Hold inference resolution; finer than a tick so LiftStop lands on the next one
const pollInterval = 20 * time.Millisecond

var (
	configFlag = flag.String("config", "cave-copter.toml", "Path to the game config file")
	debugFlag  = flag.Bool("debug", false, "Write logs/cave-copter.log and show the metrics line")
	craftFlag  = flag.String("craft", "", "Craft variant override")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "cave-copter needs an interactive terminal; try cave-copter-gui")
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *craftFlag != "" {
		cfg.Craft.Variant = *craftFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid craft: %v\n", err)
			os.Exit(1)
		}
	}
	debug := *debugFlag || cfg.Debug.Log

	if logFile := setupLogging(debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetResetHook(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	game, err := manifest.Assemble(cfg, engine.MonotonicClock{})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer game.Close()

	renderer := render.NewTerminalRenderer(screen, game.Registry, game.Board, debug)
	game.Recorder.OnRecord = func(e leaderboard.Entry, rank int) {
		renderer.MarkRecord(e.Score, rank)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	inputs := make(chan engine.Input, parameter.InputBufferSize)
	core.Go(func() {
		translateInput(ctx, cancel, events, inputs, frontend{
			hold:     engine.NewHoldTracker(cfg.HoldGrace(), cfg.RepeatGrace()),
			renderer: renderer,
			mute:     game.Sound.ToggleMute,
		})
	})

	log.Printf("cave-copter: %s profile, %s craft, %d fps", cfg.Display.Profile, cfg.Craft.Variant, cfg.Display.FPS)
	renderer.RenderFrame(game.Session)

	err = game.Scheduler.Run(ctx, inputs, func() {
		renderer.RenderFrame(game.Session)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("scheduler: %v", err)
	}
}
