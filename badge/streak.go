package badge

import (
	"time"

	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/timeutil"
)

// Streak counts consecutive completed school days.
type Streak struct {
	models.StreakState
}

// Record registers a day completed on today. A second completion on the same
// day is ignored, a completion on the day after the last one extends the
// streak and anything else starts a new streak of one. It reports whether the
// state changed.
func (s *Streak) Record(today time.Time) bool {
	day := timeutil.DayKey(today)

	switch s.LastCompletedDate {
	case day:
		return false
	case timeutil.DayKey(timeutil.Yesterday(today)):
		s.DayStreak++
	default:
		s.DayStreak = 1
	}

	s.LastCompletedDate = day

	return true
}

// normalize rewrites a last completed date saved by the mobile app
// ("Wed Oct 15 2025") in the 2006-01-02 layout. Unparseable dates are
// dropped along with the streak they belong to.
func (s *Streak) normalize(loc *time.Location) {
	if s.LastCompletedDate == "" {
		return
	}

	t, err := timeutil.ParseDayKey(s.LastCompletedDate, loc)
	if err != nil {
		s.StreakState = models.StreakState{}
		return
	}

	s.LastCompletedDate = timeutil.DayKey(t)
}
