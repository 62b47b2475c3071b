package tracker

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/timeutil"
)

var errClockFormat = errors.New("use a 12-hour time such as 8:30 AM")

// hoursForm edits the school hours and academic year of one stage. Values are
// held behind pointers so they survive copies of the model.
type hoursForm struct {
	form  *huh.Form
	stage models.Stage
	cfg   *models.StageTimeConfig
}

func validClock(s string) error {
	if s == "" || timeutil.ValidateClock(s) {
		return nil
	}

	return errClockFormat
}

func newHoursForm(stage models.Stage, current models.StageTimeConfig) *hoursForm {
	cfg := current

	f := &hoursForm{
		stage: stage,
		cfg:   &cfg,
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("School starts").
				Placeholder("8:00 AM").
				Validate(validClock).
				Value(&f.cfg.StartTime),
			huh.NewInput().
				Title("School ends").
				Placeholder("3:00 PM").
				Validate(validClock).
				Value(&f.cfg.EndTime),
		).Title(stage.Name()+" hours"),
		huh.NewGroup(
			huh.NewInput().
				Title("Academic year starts").
				Placeholder("09/01/2025").
				Value(&f.cfg.YearStart),
			huh.NewInput().
				Title("Academic year ends").
				Placeholder("06/15/2026").
				Value(&f.cfg.YearEnd),
		).Title("Academic year"),
	).WithShowHelp(true).WithShowErrors(true)

	return f
}
