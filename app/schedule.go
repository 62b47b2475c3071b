package app

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/schoolday/internal/config"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/report"
	"github.com/ayoisaiah/schoolday/schedule"
)

// scheduleAddAction adds a class to the daily schedule, or to one weekday
// when --day is set.
func scheduleAddAction(ctx *cli.Context) error {
	entry := models.ScheduleEntry{
		Time:     strings.TrimSpace(ctx.String(timeFlag.Name)),
		Subject:  strings.TrimSpace(ctx.String(subjectFlag.Name)),
		Location: strings.TrimSpace(ctx.String(locationFlag.Name)),
	}

	return withServices(ctx, func(cfg *config.Config, s *services) error {
		stage := cfg.ActiveStage(s.registry.Selected())

		var (
			earned []models.Badge
			err    error
		)

		if day := ctx.String(dayFlag.Name); day != "" {
			weekday, perr := schedule.ParseWeekday(day)
			if perr != nil {
				return perr
			}

			earned, err = s.book.AddToDay(stage, weekday, entry)
		} else {
			earned, err = s.book.Add(stage, entry)
		}

		if err != nil {
			return err
		}

		report.Saved(entry.Subject)

		if len(earned) > 0 {
			pterm.Success.Printfln("Badge earned: %s", earnedLine(earned))
		}

		return nil
	})
}

// scheduleListAction prints the daily schedule, the schedule of one weekday
// or the whole week.
func scheduleListAction(ctx *cli.Context) error {
	return withServices(ctx, func(cfg *config.Config, s *services) error {
		stage := cfg.ActiveStage(s.registry.Selected())

		if ctx.Bool(weekFlag.Name) {
			week, err := s.book.Week(stage)
			if err != nil {
				return err
			}

			if cfg.CLI.JSON {
				return printJSON(config.Stdout, week)
			}

			if len(week) == 0 {
				pterm.Info.Println(noScheduleMsg)
				return nil
			}

			printWeekTable(config.Stdout, week)

			return nil
		}

		var entries []models.ScheduleEntry

		if day := ctx.String(dayFlag.Name); day != "" {
			weekday, err := schedule.ParseWeekday(day)
			if err != nil {
				return err
			}

			week, err := s.book.Week(stage)
			if err != nil {
				return err
			}

			entries = week.Entries(weekday)
		} else {
			var err error

			entries, err = s.book.Day(stage)
			if err != nil {
				return err
			}
		}

		if cfg.CLI.JSON {
			return printJSON(config.Stdout, entries)
		}

		if len(entries) == 0 {
			pterm.Info.Println(noScheduleMsg)
			return nil
		}

		printScheduleTable(config.Stdout, entries)

		return nil
	})
}

// badgesAction lists every badge.
func badgesAction(ctx *cli.Context) error {
	return withServices(ctx, func(cfg *config.Config, s *services) error {
		badges := s.badges.Badges()

		if cfg.CLI.JSON {
			return printJSON(config.Stdout, badges)
		}

		printBadgesTable(config.Stdout, badges)

		if b, ok := s.badges.Pending(); ok {
			pterm.Info.Printfln(
				"New: %s %s (%d pending, clear with 'schoolday badges dismiss')",
				b.Icon,
				b.Name,
				s.badges.PendingCount(),
			)
		}

		return nil
	})
}

// dismissAction clears the oldest pending badge notification, or all of
// them with --all.
func dismissAction(ctx *cli.Context) error {
	return withServices(ctx, func(_ *config.Config, s *services) error {
		if ctx.Bool(allFlag.Name) {
			return s.badges.DismissAll()
		}

		return s.badges.DismissNotification()
	})
}
