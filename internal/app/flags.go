package app

import (
	"time"

	"github.com/spf13/pflag"

	"cruiser/internal/config"
)

// Flags holds command-line overrides for the loaded configuration.
type Flags struct {
	ConfigPath string
	Game       string
	Scale      int
	TPS        int
	Interval   time.Duration
	LogLevel   string
}

// Bind attaches the flags to fs.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to a config YAML file")
	fs.StringVar(&f.Game, "game", "", "game to run")
	fs.IntVar(&f.Scale, "scale", 0, "window pixels per LCD pixel")
	fs.IntVar(&f.TPS, "tps", 0, "host ticks per second")
	fs.DurationVar(&f.Interval, "interval", 0, "minimum time between frames")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// Apply copies the flags that were set on fs over cfg and revalidates it.
func (f *Flags) Apply(cfg *config.Config, fs *pflag.FlagSet) error {
	if fs.Changed("game") {
		cfg.Game = f.Game
	}
	if fs.Changed("scale") {
		cfg.Window.Scale = f.Scale
	}
	if fs.Changed("tps") {
		cfg.Window.TPS = f.TPS
	}
	if fs.Changed("interval") {
		cfg.Timing.FrameInterval = f.Interval
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	return cfg.Validate()
}
