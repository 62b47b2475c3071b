package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/schoolday/internal/models"
)

// 2025-10-15 is a Wednesday.
func at(hour, minute int) time.Time {
	return time.Date(2025, time.October, 15, hour, minute, 0, 0, time.Local)
}

var highSchool = models.StageTimeConfig{
	StartTime: "8:00 AM",
	EndTime:   "3:00 PM",
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     models.StageTimeConfig
		now     time.Time
		phase   Phase
		percent float64
		message string
	}{
		{
			name:    "midway through the day",
			cfg:     highSchool,
			now:     at(11, 30),
			phase:   InProgress,
			percent: 50,
			message: "3h 30m until school ends",
		},
		{
			name:    "before the bell",
			cfg:     highSchool,
			now:     at(7, 15),
			phase:   BeforeStart,
			percent: 0,
			message: "School starts in 45m 0s",
		},
		{
			name:    "exactly at the start",
			cfg:     highSchool,
			now:     at(8, 0),
			phase:   InProgress,
			percent: 0,
			message: "7h 0m until school ends",
		},
		{
			name:    "exactly at the end",
			cfg:     highSchool,
			now:     at(15, 0),
			phase:   AfterEnd,
			percent: 100,
			message: "School day has ended.",
		},
		{
			name:    "after school",
			cfg:     highSchool,
			now:     at(15, 1),
			phase:   AfterEnd,
			percent: 100,
			message: "School day has ended.",
		},
		{
			name:    "no start time",
			cfg:     models.StageTimeConfig{EndTime: "3:00 PM"},
			now:     at(11, 0),
			phase:   NoConfig,
			message: "Please configure school hours.",
		},
		{
			name:    "malformed end time",
			cfg:     models.StageTimeConfig{StartTime: "8:00 AM", EndTime: "15:00"},
			now:     at(11, 0),
			phase:   NoConfig,
			message: "Please configure school hours.",
		},
		{
			name:    "zero length day",
			cfg:     models.StageTimeConfig{StartTime: "9:00 AM", EndTime: "9:00 AM"},
			now:     at(9, 0),
			phase:   NoConfig,
			message: msgZeroLength,
		},
		{
			name:    "saturday",
			cfg:     highSchool,
			now:     at(11, 0).AddDate(0, 0, 3),
			phase:   Weekend,
			message: "Weekend, school resumes Monday.",
		},
		{
			name: "before the academic year",
			cfg: models.StageTimeConfig{
				StartTime: "8:00 AM",
				EndTime:   "3:00 PM",
				YearStart: "11/1/2025",
				YearEnd:   "6/30/2026",
			},
			now:     at(11, 0),
			phase:   OutOfAcademicYear,
			message: "Outside of academic year",
		},
		{
			name: "last day of the academic year",
			cfg: models.StageTimeConfig{
				StartTime: "8:00 AM",
				EndTime:   "3:00 PM",
				YearStart: "9/1/2025",
				YearEnd:   "10/15/2025",
			},
			now:     at(11, 30),
			phase:   InProgress,
			percent: 50,
			message: "3h 30m until school ends",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.cfg, tc.now)

			assert.Equal(t, tc.phase, got.Phase)
			assert.InDelta(t, tc.percent, got.Percent, 0.001)
			assert.Equal(t, tc.message, got.Message)
		})
	}
}

func TestEvaluateUnsetStartIgnoresNow(t *testing.T) {
	cfg := models.StageTimeConfig{EndTime: "3:00 PM"}

	for h := range 24 {
		got := Evaluate(cfg, at(h, 0))
		assert.Equal(t, NoConfig, got.Phase)
		assert.Zero(t, got.Percent)
	}
}

func TestEvaluateOvernight(t *testing.T) {
	cfg := models.StageTimeConfig{StartTime: "10:00 PM", EndTime: "6:00 AM"}

	got := Evaluate(cfg, at(2, 0))
	assert.Equal(t, InProgress, got.Phase)
	assert.InDelta(t, 50, got.Percent, 0.001)

	got = Evaluate(cfg, at(23, 0))
	assert.Equal(t, InProgress, got.Phase)
	assert.InDelta(t, 12.5, got.Percent, 0.001)

	got = Evaluate(cfg, at(5, 59))
	assert.Equal(t, InProgress, got.Phase)
	assert.False(t, got.Complete())

	for _, now := range []time.Time{at(6, 0), at(6, 1), at(12, 0), at(21, 59)} {
		got = Evaluate(cfg, now)
		assert.Equal(t, AfterEnd, got.Phase, now.Format(time.Kitchen))
		assert.True(t, got.Complete(), now.Format(time.Kitchen))
		assert.Equal(t, "School day has ended.", got.Message)
	}

	got = Evaluate(cfg, at(22, 0))
	assert.Equal(t, InProgress, got.Phase)
	assert.Zero(t, got.Percent)
}

func TestEvaluatePercentMonotonic(t *testing.T) {
	prev := -1.0

	for m := 6 * 60; m <= 17*60; m++ {
		got := Evaluate(highSchool, at(0, 0).Add(time.Duration(m)*time.Minute))

		assert.GreaterOrEqual(t, got.Percent, prev)
		assert.GreaterOrEqual(t, got.Percent, 0.0)
		assert.LessOrEqual(t, got.Percent, 100.0)

		prev = got.Percent
	}
}

func TestRounded(t *testing.T) {
	e := Evaluate(highSchool, at(8, 10))

	assert.InDelta(t, 2.38, e.Percent, 0.01)
	assert.Equal(t, 2, e.Rounded())
	assert.False(t, e.Complete())
}

func TestAcademicYearLabel(t *testing.T) {
	now := at(10, 0)

	assert.Equal(t, "2025-2026", AcademicYear(models.StageTimeConfig{}, now))
	assert.Equal(
		t,
		"2024-2025",
		AcademicYear(models.StageTimeConfig{YearStart: "8/26/2024"}, now),
	)
	assert.True(t, InAcademicYear(models.StageTimeConfig{YearStart: "xyzzy", YearEnd: "6/1/2026"}, now))
}
