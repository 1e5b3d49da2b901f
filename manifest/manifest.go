package manifest

import (
	"fmt"

	"github.com/lixenwraith/cave-copter/audio"
	"github.com/lixenwraith/cave-copter/config"
	"github.com/lixenwraith/cave-copter/engine"
	"github.com/lixenwraith/cave-copter/event"
	"github.com/lixenwraith/cave-copter/leaderboard"
	"github.com/lixenwraith/cave-copter/service"
	"github.com/lixenwraith/cave-copter/status"
)

// Game is the assembled runtime shared by the terminal and windowed frontends
type Game struct {
	Config    *config.Config
	Hub       *service.Hub
	Registry  *status.Registry
	Queue     *event.EventQueue
	Router    *event.Router
	Session   *engine.Session
	Scheduler *engine.Scheduler
	Sound     *audio.SoundManager
	Board     *leaderboard.Board
	Recorder  *leaderboard.Recorder
}

// Assemble starts the services and wires a session to them
// Handlers registered here run on the scheduler goroutine after each pump
func Assemble(cfg *config.Config, clock engine.Clock) (*Game, error) {
	hub := service.NewHub()
	if err := RegisterServices(hub); err != nil {
		return nil, err
	}
	if err := hub.InitAll(cfg); err != nil {
		return nil, err
	}
	if err := hub.StartAll(); err != nil {
		return nil, err
	}

	g := &Game{
		Config:   cfg,
		Hub:      hub,
		Registry: status.NewRegistry(),
		Queue:    event.NewEventQueue(),
		Sound:    service.MustGet[*audio.AudioService](hub, "audio").Manager(),
	}
	lb := service.MustGet[*leaderboard.Service](hub, "leaderboard")
	g.Board = lb.Board()
	g.Recorder = lb.Recorder()
	g.Router = event.NewRouter(g.Queue)

	opts, err := cfg.SessionOptions()
	if err != nil {
		hub.StopAll()
		return nil, err
	}
	opts.Leaderboard = g.Board

	g.Session, err = engine.NewSession(opts, g.Queue, g.Registry)
	if err != nil {
		hub.StopAll()
		return nil, fmt.Errorf("new session: %w", err)
	}
	g.Scheduler = engine.NewScheduler(clock, g.Session, g.Router, opts.FPS, g.Registry)

	g.Router.Register(g.Sound)
	g.Router.Register(g.Recorder)
	return g, nil
}

// Close stops the services in reverse start order
func (g *Game) Close() {
	g.Hub.StopAll()
}
