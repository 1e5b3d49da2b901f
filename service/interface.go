package service

import "github.com/lixenwraith/cave-copter/config"

// Service is a long-lived subsystem outside the simulation: the audio device, the leaderboard file
// The hub calls Init on every service before any Start, and Stop in reverse order at shutdown
type Service interface {
	// Name is the registry key
	Name() string

	// Dependencies lists services that initialize and start first
	Dependencies() []string

	Init(cfg *config.Config) error

	// Start acquires devices and spawns goroutines
	Start() error

	// Stop releases what Start acquired; safe to call twice
	Stop() error
}
