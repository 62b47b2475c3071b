package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	stageFlag = &cli.StringFlag{
		Name:    "stage",
		Aliases: []string{"s"},
		Usage:   "Use this stage instead of the selected one (elementary, middle, high, college)",
	}

	intervalFlag = &cli.StringFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Usage:   "How often the tracker refreshes, e.g. 5s (default: 1s)",
	}

	plainFlag = &cli.BoolFlag{
		Name:    "plain",
		Aliases: []string{"p"},
		Usage:   "Print a status line on every tick instead of starting the interactive view",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notifications for completed days and earned badges",
	}

	dayEndCmdFlag = &cli.StringFlag{
		Name:    "day-end-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command once the school day is over",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "When school starts, e.g. '8:00 AM'",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "When school ends, e.g. '3:00 PM'",
	}

	yearStartFlag = &cli.StringFlag{
		Name:  "year-start",
		Usage: "First day of the academic year, e.g. 9/1/2025",
	}

	yearEndFlag = &cli.StringFlag{
		Name:  "year-end",
		Usage: "Last day of the academic year, e.g. 6/15/2026",
	}

	timeFlag = &cli.StringFlag{
		Name:     "time",
		Aliases:  []string{"t"},
		Usage:    "Start time of the class, e.g. '9:15 AM'",
		Required: true,
	}

	subjectFlag = &cli.StringFlag{
		Name:     "subject",
		Usage:    "Subject of the class",
		Required: true,
	}

	locationFlag = &cli.StringFlag{
		Name:     "location",
		Aliases:  []string{"l"},
		Usage:    "Where the class takes place",
		Required: true,
	}

	dayFlag = &cli.StringFlag{
		Name:  "day",
		Usage: "School day of the weekly schedule, e.g. monday or mon",
	}

	weekFlag = &cli.BoolFlag{
		Name:  "week",
		Usage: "Print every day of the weekly schedule",
	}

	allFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "Clear every pending notification",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}
)
