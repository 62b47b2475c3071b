package badge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/schoolday/internal/models"
)

func day(d int) time.Time {
	return time.Date(2025, time.October, d, 15, 30, 0, 0, time.Local)
}

func TestStreakRecord(t *testing.T) {
	var s Streak

	assert.True(t, s.Record(day(13)))
	assert.Equal(t, 1, s.DayStreak)
	assert.Equal(t, "2025-10-13", s.LastCompletedDate)

	assert.False(t, s.Record(day(13)), "same day is a no-op")
	assert.Equal(t, 1, s.DayStreak)

	assert.True(t, s.Record(day(14)))
	assert.True(t, s.Record(day(15)))
	assert.Equal(t, 3, s.DayStreak)

	assert.True(t, s.Record(day(17)), "a gap resets the streak")
	assert.Equal(t, 1, s.DayStreak)
	assert.Equal(t, "2025-10-17", s.LastCompletedDate)
}

func TestStreakAcrossMonths(t *testing.T) {
	s := Streak{models.StreakState{LastCompletedDate: "2025-09-30", DayStreak: 4}}

	s.Record(time.Date(2025, time.October, 1, 9, 0, 0, 0, time.Local))

	assert.Equal(t, 5, s.DayStreak)
}

func TestStreakNormalize(t *testing.T) {
	cases := map[string]models.StreakState{
		"Wed Oct 15 2025": {LastCompletedDate: "2025-10-15", DayStreak: 2},
		"2025-10-15":      {LastCompletedDate: "2025-10-15", DayStreak: 2},
		"":                {LastCompletedDate: "", DayStreak: 2},
		"sometime":        {},
	}

	for in, want := range cases {
		s := Streak{models.StreakState{LastCompletedDate: in, DayStreak: 2}}
		s.normalize(time.Local)

		assert.Equal(t, want, s.StreakState, in)
	}
}
