// Package config provides YAML configuration loading for the cruiser port.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"cruiser/internal/console"
)

// Config is the full runtime configuration.
type Config struct {
	Game    string            `yaml:"game"`
	Window  WindowConfig      `yaml:"window"`
	Timing  TimingConfig      `yaml:"timing"`
	Keys    map[string]string `yaml:"keys"`
	Log     LogConfig         `yaml:"log"`
	Cruiser CruiserConfig     `yaml:"cruiser"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"`
	// TPS is the host tick rate. The frame gate is polled once per tick, so
	// it must be well above the gate rate for admissions to land close to
	// the interval.
	TPS int `yaml:"tps"`
}

// TimingConfig controls the frame gate.
type TimingConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// CruiserConfig holds the tunables of the cruiser game. Rates are per
// admitted frame.
type CruiserConfig struct {
	TurnRate  float64 `yaml:"turn_rate"`
	Thrust    float64 `yaml:"thrust"`
	Brake     float64 `yaml:"brake"`
	Drag      float64 `yaml:"drag"`
	MaxSpeed  float64 `yaml:"max_speed"`
	ShotSpeed float64 `yaml:"shot_speed"`
	ShotLife  int     `yaml:"shot_life"`
	MaxShots  int     `yaml:"max_shots"`
}

// Default returns the hardcoded configuration, matching defaults/config.yaml.
func Default() Config {
	return Config{
		Game:   "cruiser",
		Window: WindowConfig{Title: "Cruiser", Scale: 8, TPS: 500},
		Timing: TimingConfig{FrameInterval: 50 * time.Millisecond},
		Keys: map[string]string{
			"a": "k", "b": "l", "c": "r",
			"up": "w", "down": "s", "left": "a", "right": "d",
		},
		Log: LogConfig{Level: "info"},
		Cruiser: CruiserConfig{
			TurnRate:  0.25,
			Thrust:    0.35,
			Brake:     0.8,
			Drag:      0.96,
			MaxSpeed:  3,
			ShotSpeed: 2.5,
			ShotLife:  20,
			MaxShots:  4,
		},
	}
}

// Validate checks values the rest of the program relies on.
func (c Config) Validate() error {
	if c.Game == "" {
		return fmt.Errorf("game must be set")
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %d", c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Timing.FrameInterval <= 0 {
		return fmt.Errorf("timing.frame_interval must be positive, got %s", c.Timing.FrameInterval)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := c.Keymap(); err != nil {
		return err
	}
	if c.Cruiser.ShotLife < 0 || c.Cruiser.MaxShots < 0 {
		return fmt.Errorf("cruiser.shot_life and cruiser.max_shots must not be negative")
	}
	if c.Cruiser.MaxSpeed < 0 {
		return fmt.Errorf("cruiser.max_speed must not be negative, got %g", c.Cruiser.MaxSpeed)
	}
	if c.Cruiser.Drag < 0 || c.Cruiser.Drag > 1 {
		return fmt.Errorf("cruiser.drag must be within [0, 1], got %g", c.Cruiser.Drag)
	}
	if c.Cruiser.Brake < 0 || c.Cruiser.Brake > 1 {
		return fmt.Errorf("cruiser.brake must be within [0, 1], got %g", c.Cruiser.Brake)
	}
	return nil
}

// Keymap converts the keys section into a console.Keymap. Buttons missing
// from the section keep their default key. Keys are case-insensitive and
// limited to what the host keyboard reports: letters, digits and space.
func (c Config) Keymap() (console.Keymap, error) {
	km := console.DefaultKeymap()
	for name, key := range c.Keys {
		btn, ok := console.ParseButton(name)
		if !ok {
			return nil, fmt.Errorf("keys: unknown button %q", name)
		}
		if len(key) != 1 {
			return nil, fmt.Errorf("keys.%s: key must be a single character, got %q", name, key)
		}
		k := strings.ToLower(key)[0]
		if !hostKey(k) {
			return nil, fmt.Errorf("keys.%s: key must be a letter, digit or space, got %q", name, key)
		}
		km[btn] = k
	}
	return km, nil
}

func hostKey(k byte) bool {
	return k == ' ' || (k >= 'a' && k <= 'z') || (k >= '0' && k <= '9')
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
