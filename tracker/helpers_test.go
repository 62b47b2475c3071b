package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/schoolday/badge"
	"github.com/ayoisaiah/schoolday/internal/config"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/testutil"
	"github.com/ayoisaiah/schoolday/schooltime"
	"github.com/ayoisaiah/schoolday/store"
)

var hours = models.StageTimeConfig{
	StartTime: "8:00 AM",
	EndTime:   "3:00 PM",
}

type fixture struct {
	kv       *store.Memory
	registry *schooltime.Registry
	engine   *badge.Engine
	now      func() time.Time
	advance  func(time.Duration)
}

// newFixture returns stores seeded with 8:00 AM to 3:00 PM high school hours
// and a fake clock starting at start.
func newFixture(t *testing.T, start time.Time) *fixture {
	t.Helper()

	now, advance := testutil.Clock(start)

	kv := store.NewMemory()

	registry := schooltime.NewRegistry(kv, now)
	require.NoError(t, registry.Load())
	require.NoError(t, registry.Save(models.High, hours))

	engine := badge.NewEngine(kv, now)
	require.NoError(t, engine.Load())

	return &fixture{
		kv:       kv,
		registry: registry,
		engine:   engine,
		now:      now,
		advance:  advance,
	}
}

func (f *fixture) options() *Options {
	return &Options{
		Config: &config.Config{
			Stage: models.High,
			Display: config.DisplayConfig{
				Mode:         config.ModeProgress,
				TickInterval: time.Second,
			},
		},
		Registry: f.registry,
		Badges:   f.engine,
		Now:      f.now,
		Stage:    models.High,
	}
}

func badgeByID(t *testing.T, e *badge.Engine, id string) models.Badge {
	t.Helper()

	for _, b := range e.Badges() {
		if b.ID == id {
			return b
		}
	}

	t.Fatalf("badge %s not found", id)

	return models.Badge{}
}

func earnedIDs(badges []models.Badge) []string {
	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, b.ID)
	}

	return ids
}
