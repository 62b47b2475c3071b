package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/schoolday/badge"
	"github.com/ayoisaiah/schoolday/clock"
	"github.com/ayoisaiah/schoolday/internal/config"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/tracker"
)

const testConfig = `stage: high
display:
  mode: progress
  tick_interval: 1s
notifications:
  enabled: false
storage:
  driver: bolt
`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "schoolday-app")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	os.Setenv("NO_COLOR", "1")
	xdg.Reload()

	configDir := filepath.Join(dir, "config", "schoolday")

	err = os.MkdirAll(configDir, 0o755)
	if err == nil {
		err = os.WriteFile(
			filepath.Join(configDir, "config.yml"),
			[]byte(testConfig),
			0o600,
		)
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

// run executes the app with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	old := config.Stdout
	config.Stdout = &out

	t.Cleanup(func() {
		config.Stdout = old
	})

	err := Get().Run(append([]string{"schoolday"}, args...))
	require.NoError(t, err, args)

	return out.String()
}

func TestCommands(t *testing.T) {
	run(t,
		"hours",
		"--stage", "middle",
		"--start", "8:00 AM",
		"--end", "3:00 PM",
		"--year-start", "9/1/2025",
		"--year-end", "6/15/2026",
	)

	run(t, "stage", "middle")

	out := run(t, "status", "--json")

	var status tracker.Status
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, models.Middle, status.Stage)
	assert.Equal(t, "Middle School", status.StageName)
	assert.NotEqual(t, clock.NoConfig, status.Day.Phase)

	out = run(t, "stage")
	assert.Contains(t, out, "Middle School")
	assert.Contains(t, out, "8:00 AM")

	run(t,
		"schedule", "add",
		"--time", "9:00 AM",
		"--subject", "Maths",
		"--location", "Room 4",
	)
	run(t,
		"schedule", "add",
		"--time", "8:15 AM",
		"--subject", "English",
		"--location", "Room 2",
		"--day", "mon",
	)

	out = run(t, "schedule", "list", "--json")

	var entries []models.ScheduleEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []models.ScheduleEntry{
		{Time: "9:00 AM", Subject: "Maths", Location: "Room 4"},
	}, entries)

	out = run(t, "schedule", "list", "--day", "monday")
	assert.Contains(t, out, "English")

	out = run(t, "badges", "--json")

	var badges []models.Badge
	require.NoError(t, json.Unmarshal([]byte(out), &badges))

	for _, b := range badges {
		if b.ID == badge.ScheduleMaster {
			assert.Equal(t, 2, b.Progress)
		}
	}

	out = run(t, "export")

	var exported map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &exported))
	assert.Contains(t, exported, "schoolTimes")
	assert.Contains(t, exported, "weeklyScheduleData")
	assert.JSONEq(t, `"middle"`, exported["selectedStage"])
}

func TestImportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	data := `{"quarterData": {"q1": "9/1/2025"}, "selectedStage": "college"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	run(t, "import", "--yes", path)

	out := run(t, "export")

	var exported map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &exported))
	assert.JSONEq(t, `{"q1":"9/1/2025"}`, exported["quarterData"])

	// a bare stage name from the mobile app is accepted on load
	out = run(t, "status", "--json")

	var status tracker.Status
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, models.College, status.Stage)

	run(t, "stage", "middle")
}

func TestHoursWithoutFlags(t *testing.T) {
	err := Get().Run([]string{"schoolday", "hours"})
	assert.ErrorIs(t, err, errNoHours)
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer

	s := tracker.Status{
		UpdatedAt: time.Date(2025, time.October, 15, 10, 0, 0, 0, time.UTC),
		Stage:     models.High,
		StageName: "High School",
		Day: clock.Evaluation{
			Phase:   clock.InProgress,
			Message: "5h 0m until school ends",
			Percent: 28.6,
		},
		Week: clock.WeekEvaluation{
			Phase:   clock.Weekend,
			Message: "Weekend, school resumes Monday.",
		},
		Streak: models.StreakState{DayStreak: 1},
	}

	require.NoError(t, printStatus(&buf, s, false))

	out := buf.String()
	assert.Contains(t, out, "High School")
	assert.Contains(t, out, " 29%  5h 0m until school ends")
	assert.Contains(t, out, "Weekend, school resumes Monday.")
	assert.Contains(t, out, " day\n")
}
