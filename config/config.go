package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lixenwraith/cave-copter/engine"
	"github.com/lixenwraith/cave-copter/parameter"
	"github.com/lixenwraith/cave-copter/physics"
)

var (
	ErrUnknownProfile = errors.New("unknown display profile")
	ErrUnknownVariant = errors.New("unknown craft variant")
)

// Collision modes
const (
	CollisionEdge = "edge" // Leading-edge sampling
	CollisionFull = "full" // Whole-box overlap
)

// Config is the game.toml document
type Config struct {
	Display     DisplayConfig     `toml:"display"`
	Craft       CraftConfig       `toml:"craft"`
	Collision   CollisionConfig   `toml:"collision"`
	Audio       AudioConfig       `toml:"audio"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
	Input       InputConfig       `toml:"input"`
	Debug       DebugConfig       `toml:"debug"`
}

type DisplayConfig struct {
	Profile string `toml:"profile"` // "desktop" or "mobile"
	FPS     int    `toml:"fps"`
	Seed    int64  `toml:"seed"` // 0 picks a fresh seed each run
}

type CraftConfig struct {
	Variant string          `toml:"variant"`
	Custom  []VariantConfig `toml:"custom"`
}

// VariantConfig declares an extra flight profile
type VariantConfig struct {
	Name            string  `toml:"name"`
	Gravity         float64 `toml:"gravity"`
	LiftForce       float64 `toml:"lift_force"`
	MaxLiftVelocity float64 `toml:"max_lift_velocity"`
	MaxFallVelocity float64 `toml:"max_fall_velocity"`
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	VerticalOffset  float64 `toml:"vertical_offset"`
}

// Variant converts the declaration to a physics variant
func (v VariantConfig) Variant() physics.Variant {
	return physics.Variant{
		Name:            strings.ToLower(strings.TrimSpace(v.Name)),
		Gravity:         v.Gravity,
		LiftForce:       v.LiftForce,
		MaxLiftVelocity: v.MaxLiftVelocity,
		MaxFallVelocity: v.MaxFallVelocity,
		Width:           v.Width,
		Height:          v.Height,
		VerticalOffset:  v.VerticalOffset,
	}
}

type CollisionConfig struct {
	Mode string `toml:"mode"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0 to 1.0
}

type LeaderboardConfig struct {
	Path     string `toml:"path"`
	Initials string `toml:"initials"`
	Size     int    `toml:"size"`
}

type InputConfig struct {
	HoldGraceMS   int `toml:"hold_grace_ms"`
	RepeatGraceMS int `toml:"repeat_grace_ms"`
}

type DebugConfig struct {
	Log bool `toml:"log"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Profile: "desktop",
			FPS:     parameter.TargetFPS,
		},
		Craft: CraftConfig{
			Variant: physics.Scout.Name,
		},
		Collision: CollisionConfig{
			Mode: CollisionEdge,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioDefaultVolume,
		},
		Leaderboard: LeaderboardConfig{
			Path:     "leaderboard.toml",
			Initials: "AAA",
			Size:     5,
		},
		Input: InputConfig{
			HoldGraceMS:   int(parameter.HoldGrace / time.Millisecond),
			RepeatGraceMS: int(parameter.RepeatGrace / time.Millisecond),
		},
	}
}

// Profile is a canvas size with the scroll cadence tuned for it
type Profile struct {
	Name              string
	Width, Height     float64
	ScrollSpeed       float64
	ObstacleInterval  int // Ticks between obstacle spawns
	FormationInterval int // Ticks between background formation spawns
}

// ResolveProfile returns the named display profile
// Mobile keeps the desktop pixel spacing between obstacles at its slower scroll
func ResolveProfile(name string) (Profile, error) {
	desktopInterval := int(math.Round(parameter.ObstacleTargetDistance / parameter.DesktopScrollSpeed))

	var p Profile
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "desktop":
		p = Profile{
			Name:             "desktop",
			Width:            parameter.DesktopWidth,
			Height:           parameter.DesktopHeight,
			ScrollSpeed:      parameter.DesktopScrollSpeed,
			ObstacleInterval: desktopInterval,
		}
	case "mobile":
		p = Profile{
			Name:             "mobile",
			Width:            parameter.MobileWidth,
			Height:           parameter.MobileHeight,
			ScrollSpeed:      parameter.MobileScrollSpeed,
			ObstacleInterval: int(math.Round(parameter.DesktopScrollSpeed * float64(desktopInterval) / parameter.MobileScrollSpeed)),
		}
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	p.FormationInterval = int(math.Round(float64(p.ObstacleInterval) / 2))
	return p, nil
}

// CustomVariants returns the declared extra variants
func (c *Config) CustomVariants() []physics.Variant {
	out := make([]physics.Variant, 0, len(c.Craft.Custom))
	for _, vc := range c.Craft.Custom {
		out = append(out, vc.Variant())
	}
	return out
}

// Validate checks every section and reports the first problem
func (c *Config) Validate() error {
	if _, err := ResolveProfile(c.Display.Profile); err != nil {
		return err
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("display.fps must be positive, got %d", c.Display.FPS)
	}
	for _, v := range c.CustomVariants() {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("craft.custom: %w", err)
		}
	}
	if _, err := physics.Lookup(c.Craft.Variant, c.CustomVariants()...); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, c.Craft.Variant)
	}
	switch c.Collision.Mode {
	case CollisionEdge, CollisionFull:
	default:
		return fmt.Errorf("collision.mode must be %q or %q, got %q", CollisionEdge, CollisionFull, c.Collision.Mode)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if c.Leaderboard.Size <= 0 {
		return fmt.Errorf("leaderboard.size must be positive, got %d", c.Leaderboard.Size)
	}
	if c.Input.HoldGraceMS <= 0 || c.Input.RepeatGraceMS <= 0 {
		return errors.New("input grace windows must be positive")
	}
	return nil
}

// SessionOptions builds engine options for the configured profile and craft
// The leaderboard collaborator is left for the caller to attach
func (c *Config) SessionOptions() (engine.Options, error) {
	p, err := ResolveProfile(c.Display.Profile)
	if err != nil {
		return engine.Options{}, err
	}
	custom := c.CustomVariants()
	v, err := physics.Lookup(c.Craft.Variant, custom...)
	if err != nil {
		return engine.Options{}, fmt.Errorf("%w: %q", ErrUnknownVariant, c.Craft.Variant)
	}
	return engine.Options{
		Width:             p.Width,
		Height:            p.Height,
		ScrollSpeed:       p.ScrollSpeed,
		FPS:               c.Display.FPS,
		ObstacleInterval:  p.ObstacleInterval,
		FormationInterval: p.FormationInterval,
		Variant:           v,
		Custom:            custom,
		FullCollision:     c.Collision.Mode == CollisionFull,
		Seed:              c.Display.Seed,
	}, nil
}

// HoldGrace returns the initial hold window for terminal input
func (c *Config) HoldGrace() time.Duration {
	return time.Duration(c.Input.HoldGraceMS) * time.Millisecond
}

// RepeatGrace returns the auto-repeat window for terminal input
func (c *Config) RepeatGrace() time.Duration {
	return time.Duration(c.Input.RepeatGraceMS) * time.Millisecond
}
