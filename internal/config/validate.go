package config

import (
	"time"

	"github.com/ayoisaiah/schoolday/internal/models"
)

var (
	minTickInterval = 1 * time.Second
	maxTickInterval = 60 * time.Second
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Display.TickInterval < minTickInterval ||
		c.Display.TickInterval > maxTickInterval {
		return errInvalidTickInterval.Fmt(
			minTickInterval,
			maxTickInterval,
			c.Display.TickInterval,
		)
	}

	if c.Display.Mode != ModeProgress && c.Display.Mode != ModeCountdown {
		return errInvalidDisplayMode.Fmt(
			ModeProgress,
			ModeCountdown,
			c.Display.Mode,
		)
	}

	for _, s := range []models.Stage{c.Stage, c.CLI.Stage} {
		if s != "" && !s.Valid() {
			return errInvalidStage.Fmt(s)
		}
	}

	if c.Storage.Driver != "bolt" && c.Storage.Driver != "sqlite" {
		return errInvalidDriver.Fmt("bolt", "sqlite", c.Storage.Driver)
	}

	return nil
}
