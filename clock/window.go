// Package clock evaluates the school day and week at a given instant.
// Evaluation is pure; repeated calls with the same input give the same
// result.
package clock

import (
	"math"
	"time"

	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/timeutil"
)

// Phase is the position of an instant relative to the school day.
type Phase string

const (
	NoConfig          Phase = "noConfig"
	BeforeStart       Phase = "beforeStart"
	InProgress        Phase = "inProgress"
	AfterEnd          Phase = "afterEnd"
	Weekend           Phase = "weekend"
	OutOfAcademicYear Phase = "outOfAcademicYear"
)

const (
	msgNoConfig   = "Please configure school hours."
	msgZeroLength = "School starts and ends at the same time. Please update school hours."
	msgOutOfYear  = "Outside of academic year"
	msgWeekend    = "Weekend, school resumes Monday."
	msgDayEnded   = "School day has ended."
	msgStartsIn   = "School starts in "
	msgUntilEnd   = " until school ends"
)

// Evaluation is the state of the school day at one instant.
type Evaluation struct {
	Phase   Phase   `json:"phase"`
	Message string  `json:"message"`
	Percent float64 `json:"percent"`
	// Seconds until the next boundary: the start of school before the
	// bell, the end of school while in progress, zero otherwise
	Seconds int `json:"seconds"`
}

// Rounded returns the percentage for display.
func (e Evaluation) Rounded() int {
	return int(math.Round(e.Percent))
}

// Complete reports whether the school day is over.
func (e Evaluation) Complete() bool {
	return e.Percent >= 100
}

// Evaluate computes the state of the school day described by cfg at now.
//
// A window whose end is earlier than its start crosses midnight: a 10:00 PM
// to 6:00 AM window is in progress at 2:00 AM and has ended from 6:00 AM
// until 10:00 PM.
func Evaluate(cfg models.StageTimeConfig, now time.Time) Evaluation {
	start, errStart := timeutil.ParseClock(cfg.StartTime)
	end, errEnd := timeutil.ParseClock(cfg.EndTime)

	if errStart != nil || errEnd != nil {
		return Evaluation{Phase: NoConfig, Message: msgNoConfig}
	}

	if !InAcademicYear(cfg, now) {
		return Evaluation{Phase: OutOfAcademicYear, Message: msgOutOfYear}
	}

	if timeutil.IsWeekend(now) {
		return Evaluation{Phase: Weekend, Message: msgWeekend}
	}

	current := timeutil.MinuteOfDay(now)

	if end < start {
		switch {
		case current <= end:
			current += timeutil.MinutesInADay
		case current < start:
			return dayEnded()
		}

		end += timeutil.MinutesInADay
	}

	if start == end {
		return Evaluation{Phase: NoConfig, Message: msgZeroLength}
	}

	switch {
	case current < start:
		secs := (start - current) * 60

		return Evaluation{
			Phase:   BeforeStart,
			Message: msgStartsIn + timeutil.FormatDuration(secs),
			Seconds: secs,
		}
	case current >= end:
		return dayEnded()
	}

	elapsed := float64(current - start)
	total := float64(end - start)
	secs := (end - current) * 60

	return Evaluation{
		Phase:   InProgress,
		Percent: max(0, min(100, elapsed/total*100)),
		Message: timeutil.FormatDuration(secs) + msgUntilEnd,
		Seconds: secs,
	}
}

func dayEnded() Evaluation {
	return Evaluation{
		Phase:   AfterEnd,
		Percent: 100,
		Message: msgDayEnded,
	}
}
