package clock

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/timeutil"
)

const (
	// ReferenceDayMinutes is the length of every school day in the week view,
	// regardless of the configured hours.
	ReferenceDayMinutes = 480
	schoolDaysInAWeek   = 5
)

// WeekEvaluation is the state of the school week at one instant.
type WeekEvaluation struct {
	Phase         Phase   `json:"phase"`
	Message       string  `json:"message"`
	Percent       float64 `json:"percent"`
	DaysRemaining int     `json:"daysRemaining"`
}

// Rounded returns the percentage for display.
func (e WeekEvaluation) Rounded() int {
	return Evaluation{Percent: e.Percent}.Rounded()
}

// Complete reports whether the school week is over.
func (e WeekEvaluation) Complete() bool {
	return e.Percent >= 100
}

// EvaluateWeek computes how much of the Monday to Friday week has elapsed at
// now. Only the academic year of cfg is consulted.
func EvaluateWeek(cfg models.StageTimeConfig, now time.Time) WeekEvaluation {
	if !InAcademicYear(cfg, now) {
		return WeekEvaluation{Phase: OutOfAcademicYear, Message: msgOutOfYear}
	}

	if timeutil.IsWeekend(now) {
		return WeekEvaluation{Phase: Weekend, Message: msgWeekend}
	}

	dayIndex := int(now.Weekday()) - int(time.Monday)
	elapsed := dayIndex*ReferenceDayMinutes +
		min(timeutil.MinuteOfDay(now), ReferenceDayMinutes)

	percent := min(
		100,
		float64(elapsed)/float64(ReferenceDayMinutes*schoolDaysInAWeek)*100,
	)

	if percent >= 100 {
		return WeekEvaluation{
			Phase:   AfterEnd,
			Percent: percent,
			Message: "Week completed",
		}
	}

	left := schoolDaysInAWeek - dayIndex

	suffix := "s"
	if left == 1 {
		suffix = ""
	}

	return WeekEvaluation{
		Phase:         InProgress,
		Percent:       percent,
		Message:       fmt.Sprintf("%d day%s remaining", left, suffix),
		DaysRemaining: left,
	}
}
