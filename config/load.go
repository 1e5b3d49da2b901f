package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads path over the defaults, then applies CAVE_COPTER_* overrides
// A missing file is not an error; an empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("config: %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("config %s: %w", path, err)
		default:
			for _, key := range md.Undecoded() {
				log.Printf("config: ignoring unknown key %s", key)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults without env overrides
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides fields from the environment; malformed values are ignored
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("CAVE_COPTER_PROFILE"); ok && v != "" {
		cfg.Display.Profile = v
	}
	if v, ok := os.LookupEnv("CAVE_COPTER_FPS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Display.FPS = n
		}
	}
	if v, ok := os.LookupEnv("CAVE_COPTER_SEED"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Display.Seed = n
		}
	}
	if v, ok := os.LookupEnv("CAVE_COPTER_VARIANT"); ok && v != "" {
		cfg.Craft.Variant = v
	}
	if v, ok := os.LookupEnv("CAVE_COPTER_COLLISION"); ok && v != "" {
		cfg.Collision.Mode = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("CAVE_COPTER_AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if v, ok := os.LookupEnv("CAVE_COPTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.Volume = min(max(float64(n)/100.0, 0), 1)
		}
	}
	if v, ok := os.LookupEnv("CAVE_COPTER_LEADERBOARD"); ok && v != "" {
		cfg.Leaderboard.Path = v
	}
	if v, ok := os.LookupEnv("CAVE_COPTER_INITIALS"); ok && v != "" {
		cfg.Leaderboard.Initials = v
	}
	if v, ok := os.LookupEnv("CAVE_COPTER_DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug.Log = b
		}
	}
}
