// Package app wires the command-line interface to the school day services
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/schoolday/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the schoolday app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "schoolday",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Schoolday shows how far along the school day and week are, keeps a
		streak of completed days and awards badges for good habits.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Print the progress of the school day and week",
				Flags:  []cli.Flag{stageFlag, jsonFlag},
				Action: statusAction,
			},
			{
				Name:      "stage",
				Usage:     "Print or change the selected stage (elementary, middle, high, college)",
				ArgsUsage: "[stage]",
				Action:    stageAction,
			},
			{
				Name:  "hours",
				Usage: "Set the school hours and academic year of a stage",
				Flags: []cli.Flag{
					stageFlag,
					startFlag,
					endFlag,
					yearStartFlag,
					yearEndFlag,
				},
				Action: hoursAction,
			},
			{
				Name:  "schedule",
				Usage: "Manage the class schedule of a stage",
				Subcommands: []*cli.Command{
					{
						Name:  "add",
						Usage: "Add a class to the daily schedule, or to one weekday with --day",
						Flags: []cli.Flag{
							stageFlag,
							timeFlag,
							subjectFlag,
							locationFlag,
							dayFlag,
						},
						Action: scheduleAddAction,
					},
					{
						Name:   "list",
						Usage:  "Print the daily schedule, one weekday with --day or the whole week with --week",
						Flags:  []cli.Flag{stageFlag, dayFlag, weekFlag, jsonFlag},
						Action: scheduleListAction,
					},
				},
			},
			{
				Name:   "badges",
				Usage:  "List badges and their progress",
				Flags:  []cli.Flag{jsonFlag},
				Action: badgesAction,
				Subcommands: []*cli.Command{
					{
						Name:   "dismiss",
						Usage:  "Clear the pending badge notification",
						Flags:  []cli.Flag{allFlag},
						Action: dismissAction,
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Write all saved data as JSON to a file or stdout",
				ArgsUsage: "[file]",
				Action:    exportAction,
			},
			{
				Name:      "import",
				Usage:     "Restore saved data from a JSON export (use - for stdin)",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{yesFlag},
				Action:    importAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			stageFlag,
			intervalFlag,
			plainFlag,
			disableNotificationFlag,
			dayEndCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
