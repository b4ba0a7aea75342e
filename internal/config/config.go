package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by Load when a setting is out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds the runtime settings of the motion command.
// Values are populated from .motion.yaml, MOTION_* env vars, and CLI flags.
type Config struct {
	FPS     int     `mapstructure:"fps"`
	Seconds float64 `mapstructure:"seconds"`
	// Width and Height override the scenario canvas when positive.
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	OutDir  string `mapstructure:"out_dir"`
	Workers int    `mapstructure:"workers"`
	Script  string `mapstructure:"script"`
	Verbose bool   `mapstructure:"verbose"`
	Watch   bool   `mapstructure:"watch"`
	ShowFPS bool   `mapstructure:"show_fps"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("fps", 60)
	viper.SetDefault("seconds", 5.0)
	viper.SetDefault("width", 0)
	viper.SetDefault("height", 0)
	viper.SetDefault("out_dir", "frames")
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("script", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("watch", false)
	viper.SetDefault("show_fps", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.Seconds <= 0:
		return fmt.Errorf("%w: seconds must be positive, got %v", ErrInvalid, c.Seconds)
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: negative canvas size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}
	return nil
}

// Frames returns the number of frames covering Seconds at FPS.
func (c Config) Frames() int {
	return max(int(c.Seconds*float64(c.FPS)+0.5), 1)
}
