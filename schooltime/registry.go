// Package schooltime holds the school hours and academic year of every stage
// and the stage the user selected.
package schooltime

import (
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ayoisaiah/schoolday/clock"
	"github.com/ayoisaiah/schoolday/internal/apperr"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/timeutil"
	"github.com/ayoisaiah/schoolday/internal/validation"
	"github.com/ayoisaiah/schoolday/store"
)

var (
	errUnknownStage = &apperr.Error{
		Message: "unknown stage %q",
	}

	errInvalidTimes = &apperr.Error{
		Message: "invalid school hours for %s",
	}

	errYearOrder = &apperr.Error{
		Message: "academic year must start before it ends (%s - %s)",
	}

	errSave = &apperr.Error{
		Message: "unable to save school hours",
	}

	errLoad = &apperr.Error{
		Message: "unable to load school hours",
	}
)

// Change describes an update to the configuration of a stage.
type Change struct {
	Stage    models.Stage
	Config   models.StageTimeConfig
	Selected bool
}

// Registry is the single shared source of school hours. It is safe for
// concurrent use; readers always see either the old or the new configuration
// of a stage, never a mix.
type Registry struct {
	kv       store.KV
	now      func() time.Time
	validate *validator.Validate
	times    map[models.Stage]models.StageTimeConfig
	subs     map[int]func(Change)
	selected models.Stage
	nextSub  int
	mu       sync.RWMutex
}

// NewRegistry returns a registry persisted to kv. now is the wall clock used
// to interpret academic year dates.
func NewRegistry(kv store.KV, now func() time.Time) *Registry {
	return &Registry{
		kv:       kv,
		now:      now,
		validate: validation.New(now),
		times:    emptyTimes(),
		subs:     make(map[int]func(Change)),
	}
}

func emptyTimes() map[models.Stage]models.StageTimeConfig {
	m := make(map[models.Stage]models.StageTimeConfig, len(models.Stages))
	for _, s := range models.Stages {
		m[s] = models.StageTimeConfig{}
	}

	return m
}

// Load reads the stored school hours and selected stage. Missing keys leave
// the defaults in place.
func (r *Registry) Load() error {
	times, selected, err := r.read()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.times = times

	if selected.Valid() {
		r.selected = selected
	}

	return nil
}

// Refresh re-reads the store and notifies subscribers of every change made
// by another process since the last read.
func (r *Registry) Refresh() error {
	times, selected, err := r.read()
	if err != nil {
		return err
	}

	var changes []Change

	r.mu.Lock()

	for _, stage := range models.Stages {
		if times[stage] != r.times[stage] {
			changes = append(changes, Change{Stage: stage, Config: times[stage]})
		}
	}

	r.times = times

	if selected.Valid() && selected != r.selected {
		r.selected = selected
		changes = append(changes, Change{Stage: selected, Config: times[selected], Selected: true})
	}

	subs := r.subscribers()

	r.mu.Unlock()

	for _, c := range changes {
		notify(subs, c)
	}

	return nil
}

func (r *Registry) read() (map[models.Stage]models.StageTimeConfig, models.Stage, error) {
	stored := make(map[models.Stage]models.StageTimeConfig)

	if _, err := store.GetJSON(r.kv, store.KeySchoolTimes, &stored); err != nil {
		return nil, "", errLoad.Wrap(err)
	}

	var selected models.Stage

	if _, err := store.GetJSON(r.kv, store.KeySelectedStage, &selected); err != nil {
		// the mobile app may have stored the bare stage id
		raw, _, _ := r.kv.Get(store.KeySelectedStage)
		selected = models.Stage(raw)
	}

	times := emptyTimes()

	for stage, cfg := range stored {
		if !stage.Valid() {
			slog.Warn("ignoring school hours of unknown stage", slog.String("stage", string(stage)))
			continue
		}

		times[stage] = cfg
	}

	return times, selected, nil
}

// Times returns the configuration of stage.
func (r *Registry) Times(stage models.Stage) models.StageTimeConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.times[stage]
}

// All returns a copy of every stage's configuration.
func (r *Registry) All() map[models.Stage]models.StageTimeConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.times)
}

// Validate checks cfg without saving it.
func (r *Registry) Validate(stage models.Stage, cfg models.StageTimeConfig) error {
	if !stage.Valid() {
		return errUnknownStage.Fmt(stage)
	}

	if err := r.validate.Struct(cfg); err != nil {
		return errInvalidTimes.Fmt(stage.Name()).Wrap(err)
	}

	if cfg.HasYear() {
		now := r.now()

		start, _ := timeutil.ParseDate(cfg.YearStart, now)
		end, _ := timeutil.ParseDate(cfg.YearEnd, now)

		if end.Before(start) {
			return errYearOrder.Fmt(cfg.YearStart, cfg.YearEnd)
		}
	}

	return nil
}

// Save replaces the configuration of stage. The other stages are taken from
// the store so that edits made by another process are kept. The new value is
// persisted before it becomes visible; on failure the previous value is kept.
func (r *Registry) Save(stage models.Stage, cfg models.StageTimeConfig) error {
	if err := r.Validate(stage, cfg); err != nil {
		return err
	}

	r.mu.Lock()

	updated, _, err := r.read()
	if err != nil {
		r.mu.Unlock()
		return err
	}

	updated[stage] = cfg

	if err := store.SetJSON(r.kv, store.KeySchoolTimes, updated); err != nil {
		r.mu.Unlock()

		slog.Error("saving school hours failed", slog.Any("error", err))

		return errSave.Wrap(err)
	}

	r.times = updated
	subs := r.subscribers()

	r.mu.Unlock()

	notify(subs, Change{Stage: stage, Config: cfg})

	return nil
}

// Selected returns the stage the user picked, or an empty stage if none has
// been chosen.
func (r *Registry) Selected() models.Stage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.selected
}

// SelectStage persists stage as the user's selection.
func (r *Registry) SelectStage(stage models.Stage) error {
	if !stage.Valid() {
		return errUnknownStage.Fmt(stage)
	}

	r.mu.Lock()

	if err := store.SetJSON(r.kv, store.KeySelectedStage, stage); err != nil {
		r.mu.Unlock()
		return errSave.Wrap(err)
	}

	r.selected = stage
	cfg := r.times[stage]
	subs := r.subscribers()

	r.mu.Unlock()

	notify(subs, Change{Stage: stage, Config: cfg, Selected: true})

	return nil
}

// Subscribe registers fn to be called after every successful change. The
// returned function removes the subscription.
func (r *Registry) Subscribe(fn func(Change)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		delete(r.subs, id)
	}
}

// WithinAcademicYear reports whether today is inside the academic year of
// stage. Stages without an academic year are always in session.
func (r *Registry) WithinAcademicYear(stage models.Stage) bool {
	return clock.InAcademicYear(r.Times(stage), r.now())
}

// AcademicYear returns the label of the academic year of stage.
func (r *Registry) AcademicYear(stage models.Stage) string {
	return clock.AcademicYear(r.Times(stage), r.now())
}

// subscribers must be called with the lock held.
func (r *Registry) subscribers() []func(Change) {
	subs := make([]func(Change), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}

	return subs
}

func notify(subs []func(Change), c Change) {
	for _, fn := range subs {
		fn(c)
	}
}
