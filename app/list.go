package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ayoisaiah/schoolday/clock"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/ui"
	"github.com/ayoisaiah/schoolday/schedule"
	"github.com/ayoisaiah/schoolday/tracker"
)

const (
	noScheduleMsg = "No classes scheduled"
	statusBar     = 30
	dateFormat    = "Jan 02, 2006"
)

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// printStagesTable prints the hours of the stages in times. The active stage
// is marked.
func printStagesTable(
	w io.Writer,
	times map[models.Stage]models.StageTimeConfig,
	active models.Stage,
) {
	tableBody := [][]string{
		{"", "STAGE", "STARTS", "ENDS", "YEAR STARTS", "YEAR ENDS"},
	}

	for _, stage := range models.Stages {
		cfg, ok := times[stage]
		if !ok {
			continue
		}

		marker := ""
		if stage == active {
			marker = ui.Green("●")
		}

		tableBody = append(tableBody, []string{
			marker,
			stage.Name(),
			orDash(cfg.StartTime),
			orDash(cfg.EndTime),
			orDash(cfg.YearStart),
			orDash(cfg.YearEnd),
		})
	}

	ui.PrintTable(tableBody, w)
}

// printStatus prints the day and week progress.
func printStatus(w io.Writer, s tracker.Status, asJSON bool) error {
	if asJSON {
		b, err := tracker.MarshalStatus(s)
		if err != nil {
			return err
		}

		_, err = w.Write(b)

		return err
	}

	fmt.Fprintf(w, "%s %s\n\n", ui.Cyan(s.StageName), s.AcademicYear)

	switch s.Day.Phase {
	case clock.InProgress, clock.AfterEnd:
		fmt.Fprintf(
			w,
			"Day   %s %3d%%  %s\n",
			ui.Bar(s.Day.Percent, statusBar),
			s.Day.Rounded(),
			s.Day.Message,
		)
	default:
		fmt.Fprintf(w, "Day   %s\n", ui.Yellow(s.Day.Message))
	}

	switch s.Week.Phase {
	case clock.InProgress, clock.AfterEnd:
		fmt.Fprintf(
			w,
			"Week  %s %3d%%  %s\n",
			ui.Bar(s.Week.Percent, statusBar),
			s.Week.Rounded(),
			s.Week.Message,
		)
	default:
		fmt.Fprintf(w, "Week  %s\n", ui.Yellow(s.Week.Message))
	}

	unit := "days"
	if s.Streak.DayStreak == 1 {
		unit = "day"
	}

	fmt.Fprintf(w, "\nStreak %s %s\n", ui.Magenta(s.Streak.DayStreak), unit)

	return nil
}

// printScheduleTable prints the entries of one day.
func printScheduleTable(w io.Writer, entries []models.ScheduleEntry) {
	tableBody := [][]string{{"#", "TIME", "SUBJECT", "LOCATION"}}

	for i, e := range entries {
		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			e.Time,
			e.Subject,
			e.Location,
		})
	}

	ui.PrintTable(tableBody, w)
}

// printWeekTable prints the weekly schedule day by day.
func printWeekTable(w io.Writer, week schedule.Week) {
	tableBody := [][]string{{"DAY", "TIME", "SUBJECT", "LOCATION"}}

	for _, d := range schedule.Weekdays {
		for i, e := range week.Entries(d) {
			day := ""
			if i == 0 {
				day = ui.Cyan(d.String())
			}

			tableBody = append(tableBody, []string{day, e.Time, e.Subject, e.Location})
		}
	}

	ui.PrintTable(tableBody, w)
}

// printBadgesTable prints every badge with its progress.
func printBadgesTable(w io.Writer, badges []models.Badge) {
	tableBody := [][]string{{"", "BADGE", "DESCRIPTION", "PROGRESS", "EARNED"}}

	for _, b := range badges {
		progress := "-"
		if b.Target > 0 {
			progress = fmt.Sprintf("%d/%d", min(b.Progress, b.Target), b.Target)
		}

		earned := ""
		if b.Earned && b.EarnedDate != nil {
			earned = ui.Green(b.EarnedDate.Format(dateFormat))
		}

		tableBody = append(tableBody, []string{
			b.Icon,
			b.Name,
			b.Description,
			progress,
			earned,
		})
	}

	ui.PrintTable(tableBody, w)
}

func earnedLine(badges []models.Badge) string {
	names := make([]string, 0, len(badges))
	for _, b := range badges {
		names = append(names, b.Icon+" "+b.Name)
	}

	return strings.Join(names, ", ")
}
