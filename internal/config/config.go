// Package config loads the application configuration from the config file,
// the first-run prompt and command-line flags.
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/schoolday/internal/models"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Stage         models.Stage       `mapstructure:"stage"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Storage       StorageConfig      `mapstructure:"storage"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	DisplayConfig struct {
		Mode           DisplayMode   `mapstructure:"mode"`
		TickInterval   time.Duration `mapstructure:"tick_interval"`
		TwentyFourHour bool          `mapstructure:"24hr_clock"`
		DarkTheme      bool          `mapstructure:"dark_theme"`
	}

	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	SettingsConfig struct {
		// DayEndCmd runs once the school day is over
		DayEndCmd string `mapstructure:"day_end_cmd"`
		Debug     bool   `mapstructure:"debug"`
	}

	StorageConfig struct {
		Driver string `mapstructure:"driver"`
	}

	// CLIConfig holds values that only come from command-line flags.
	CLIConfig struct {
		Stage models.Stage
		Plain bool
		JSON  bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error

	// DisplayMode selects how the tracker renders the school day.
	DisplayMode string
)

const Version = "v0.3.0"

const (
	ModeProgress  DisplayMode = "progress"
	ModeCountdown DisplayMode = "countdown"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies the options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// ActiveStage returns the stage chosen on the command line, falling back to
// the stored selection and then the configured default.
func (c *Config) ActiveStage(stored models.Stage) models.Stage {
	if c.CLI.Stage != "" {
		return c.CLI.Stage
	}

	if stored.Valid() {
		return stored
	}

	return c.Stage
}
