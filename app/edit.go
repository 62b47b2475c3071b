package app

import (
	"errors"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/schoolday/internal/config"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/report"
)

var errNoHours = errors.New(
	"nothing to save: set at least one of --start, --end, --year-start or --year-end",
)

// stageAction prints the stages or selects the one given as argument.
func stageAction(ctx *cli.Context) error {
	return withServices(ctx, func(cfg *config.Config, s *services) error {
		if ctx.NArg() == 0 {
			active := cfg.ActiveStage(s.registry.Selected())
			printStagesTable(config.Stdout, s.registry.All(), active)

			return nil
		}

		stage := models.Stage(strings.ToLower(strings.TrimSpace(ctx.Args().First())))

		if err := s.registry.SelectStage(stage); err != nil {
			return err
		}

		pterm.Success.Printfln("%s selected", stage.Name())

		return nil
	})
}

// hoursAction updates the school hours and academic year of a stage. Fields
// whose flag is not set keep their saved value.
func hoursAction(ctx *cli.Context) error {
	fields := map[string]func(*models.StageTimeConfig, string){
		startFlag.Name: func(c *models.StageTimeConfig, v string) {
			c.StartTime = v
		},
		endFlag.Name: func(c *models.StageTimeConfig, v string) {
			c.EndTime = v
		},
		yearStartFlag.Name: func(c *models.StageTimeConfig, v string) {
			c.YearStart = v
		},
		yearEndFlag.Name: func(c *models.StageTimeConfig, v string) {
			c.YearEnd = v
		},
	}

	return withServices(ctx, func(cfg *config.Config, s *services) error {
		stage := cfg.ActiveStage(s.registry.Selected())
		times := s.registry.Times(stage)

		var changed bool

		for name, set := range fields {
			if ctx.IsSet(name) {
				set(&times, strings.TrimSpace(ctx.String(name)))
				changed = true
			}
		}

		if !changed {
			return errNoHours
		}

		if err := s.registry.Save(stage, times); err != nil {
			return err
		}

		report.Saved(stage.Name() + " hours")

		printStagesTable(
			config.Stdout,
			map[models.Stage]models.StageTimeConfig{stage: times},
			stage,
		)

		return nil
	})
}
