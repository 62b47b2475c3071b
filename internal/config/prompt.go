package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/schoolday/internal/models"
)

const asciiLogo = `
 ___  ___ _  _  ___   ___  _    ___   _ __   __
/ __|/ __| || |/ _ \ / _ \| |  |   \ /_\\ \ / /
\__ \ (__| __ | (_) | (_) | |__| |) / _ \\ V /
|___/\___|_||_|\___/ \___/|____|___/_/ \_\|_|`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Stage          models.Stage
	Mode           DisplayMode
	TwentyFourHour bool
}

// WithPromptConfig returns an Option that asks for the basic settings when
// the config file does not exist yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		var opts PromptOptions

		pterm.Println(asciiLogo)

		_ = putils.BulletListFromString(`Follow the prompts below to configure schoolday for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'schoolday edit-config' to change any settings.`, " ").
			Render()

		if err := promptForm(&opts).Run(); err != nil {
			return fmt.Errorf("form interaction failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func promptForm(opts *PromptOptions) *huh.Form {
	stages := make([]huh.Option[models.Stage], 0, len(models.Stages))

	for _, s := range models.Stages {
		stages = append(stages, huh.NewOption(s.Name(), s).Selected(s == models.High))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Stage]().
				Title("Which stage are you in?").
				Options(stages...).
				Value(&opts.Stage),
		),
		huh.NewGroup(
			huh.NewSelect[DisplayMode]().
				Title("How should the school day be shown?").
				Options(
					huh.NewOption("Progress bar", ModeProgress).Selected(true),
					huh.NewOption("Countdown", ModeCountdown),
				).
				Value(&opts.Mode),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use a 24-hour clock?").
				Value(&opts.TwentyFourHour),
		),
	)
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Stage = opts.Stage
	c.Display.Mode = opts.Mode
	c.Display.TwentyFourHour = opts.TwentyFourHour
}
