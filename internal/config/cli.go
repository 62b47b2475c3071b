package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/schoolday/internal/models"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Stage         string
	Interval      string
	DayEndCmd     string
	DisableNotify bool
	Plain         bool
	JSON          bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Stage:         ctx.String("stage"),
			Interval:      ctx.String("interval"),
			DayEndCmd:     ctx.String("day-end-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			Plain:         ctx.Bool("plain"),
			JSON:          ctx.Bool("json"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Stage != "" {
		c.CLI.Stage = models.Stage(opts.Stage)
	}

	if opts.Interval != "" {
		dur, err := time.ParseDuration(opts.Interval)
		if err != nil {
			return errInvalidCLIInterval.Fmt(opts.Interval).Wrap(err)
		}

		c.Display.TickInterval = dur
	}

	if opts.DayEndCmd != "" {
		c.Settings.DayEndCmd = opts.DayEndCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.Plain = opts.Plain
	c.CLI.JSON = opts.JSON

	return nil
}
