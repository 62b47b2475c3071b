package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/schoolday/clock"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/testutil"
)

var statusSnapshot = Snapshot{
	Time:         time.Date(2025, time.October, 15, 10, 0, 0, 0, time.UTC),
	Stage:        models.High,
	AcademicYear: "2025-2026",
	Day: clock.Evaluation{
		Phase:   clock.InProgress,
		Message: "6h until school ends",
		Percent: 25,
		Seconds: 21600,
	},
	Week: clock.WeekEvaluation{
		Phase:         clock.InProgress,
		Message:       "3 days remaining",
		Percent:       50,
		DaysRemaining: 3,
	},
	Streak: models.StreakState{
		LastCompletedDate: "2025-10-14",
		DayStreak:         3,
	},
}

type statusGolden struct {
	t      *testing.T
	status Status
}

func (g statusGolden) Output() ([]byte, string) {
	b, err := MarshalStatus(g.status)
	require.NoError(g.t, err)

	return b, "status"
}

func TestMarshalStatus(t *testing.T) {
	testutil.CompareGoldenFile(t, statusGolden{t: t, status: statusSnapshot.Status()})
}

func TestStatusFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	_, ok, err := ReadStatusFile(path)
	require.NoError(t, err)
	assert.False(t, ok)

	want := statusSnapshot.Status()

	require.NoError(t, WriteStatusFile(path, want))

	got, ok, err := ReadStatusFile(path)
	require.NoError(t, err)
	require.True(t, ok)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}

	assert.NoFileExists(t, path+".tmp")
}
