// Package tracker runs the live school day view: a monitor that evaluates the
// day and week on every tick, the alerts raised on completion and the terminal
// front ends that display them.
package tracker

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/schoolday/clock"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/timeutil"
	"github.com/ayoisaiah/schoolday/schooltime"
)

// earlyWindow is how long before the bell an arrival counts as early.
const earlyWindow = time.Hour

// Badges is the part of the badge engine the monitor reports to.
type Badges interface {
	RecordDayCompleted(today time.Time) ([]models.Badge, bool, error)
	RecordWeekComplete(today time.Time) ([]models.Badge, bool, error)
	RecordEarlyArrival(today time.Time) ([]models.Badge, bool, error)
	Refresh() error
	Streak() models.StreakState
}

// Snapshot is the result of one tick.
type Snapshot struct {
	Time         time.Time
	Err          error
	Stage        models.Stage
	AcademicYear string
	Streak       models.StreakState
	Earned       []models.Badge
	Day          clock.Evaluation
	Week         clock.WeekEvaluation
	// DayCompleted and WeekCompleted are set on the tick that recorded them.
	// A day or week recorded by an earlier run is not reported again.
	DayCompleted  bool
	WeekCompleted bool
}

// Monitor evaluates the selected stage on every tick and turns completion
// levels into single events for the badge engine.
type Monitor struct {
	registry    *schooltime.Registry
	badges      Badges
	unsubscribe func()
	stage       models.Stage
	day         clock.Latch
	week        clock.Latch
	early       clock.Latch
	mu          sync.Mutex
}

// NewMonitor returns a monitor for stage. It follows stage selections made
// through the registry until Close is called.
func NewMonitor(
	registry *schooltime.Registry,
	badges Badges,
	stage models.Stage,
) *Monitor {
	m := &Monitor{
		registry: registry,
		badges:   badges,
		stage:    stage,
	}

	m.unsubscribe = registry.Subscribe(func(c schooltime.Change) {
		if c.Selected {
			m.SetStage(c.Stage)
		}
	})

	return m
}

func (m *Monitor) Stage() models.Stage {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stage
}

func (m *Monitor) SetStage(stage models.Stage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stage = stage
}

// Close stops following the registry.
func (m *Monitor) Close() {
	m.unsubscribe()
}

// Tick evaluates the school day at now. The configuration and badges are
// read afresh on every call so that edits made elsewhere are picked up
// immediately.
func (m *Monitor) Tick(now time.Time) Snapshot {
	if err := m.registry.Refresh(); err != nil {
		slog.Warn("reloading school hours failed", slog.Any("error", err))
	}

	if err := m.badges.Refresh(); err != nil {
		slog.Warn("reloading badges failed", slog.Any("error", err))
	}

	stage := m.Stage()
	cfg := m.registry.Times(stage)

	snap := Snapshot{
		Time:         now,
		Stage:        stage,
		AcademicYear: m.registry.AcademicYear(stage),
		Day:          clock.Evaluate(cfg, now),
		Week:         clock.EvaluateWeek(cfg, now),
	}

	dayKey := timeutil.DayKey(now)

	early := snap.Day.Phase == clock.BeforeStart &&
		time.Duration(snap.Day.Seconds)*time.Second <= earlyWindow

	if m.early.Observe(dayKey, early) {
		m.report(&snap, &m.early, m.badges.RecordEarlyArrival, now)
	}

	if m.day.Observe(dayKey, snap.Day.Complete()) {
		snap.DayCompleted = m.report(&snap, &m.day, m.badges.RecordDayCompleted, now)

		if snap.DayCompleted {
			slog.Info(
				"school day complete",
				slog.String("stage", string(stage)),
				slog.String("day", dayKey),
			)
		}
	}

	if m.week.Observe(timeutil.WeekKey(now), snap.Week.Complete()) {
		snap.WeekCompleted = m.report(&snap, &m.week, m.badges.RecordWeekComplete, now)
	}

	snap.Streak = m.badges.Streak()

	return snap
}

// report runs a badge update and reports whether it recorded a new event. A
// failed update re-arms its latch so the next tick retries it.
func (m *Monitor) report(
	snap *Snapshot,
	latch *clock.Latch,
	fn func(time.Time) ([]models.Badge, bool, error),
	now time.Time,
) bool {
	earned, recorded, err := fn(now)
	if err != nil {
		latch.Reset()

		snap.Err = err

		slog.Error("recording progress failed", slog.Any("error", err))

		return false
	}

	snap.Earned = append(snap.Earned, earned...)

	return recorded
}

// Eventful reports whether the tick produced anything to alert on.
func (s Snapshot) Eventful() bool {
	return len(s.Earned) > 0 || s.DayCompleted || s.WeekCompleted
}
