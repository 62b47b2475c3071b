package badge

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ayoisaiah/schoolday/internal/apperr"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/timeutil"
	"github.com/ayoisaiah/schoolday/store"
)

var (
	errLoad = &apperr.Error{
		Message: "unable to load badges",
	}

	errSave = &apperr.Error{
		Message: "unable to save badges",
	}
)

// historyDays bounds how far back completed days are remembered.
const historyDays = 62

// record is the persisted badge state. The layout matches the one written by
// the mobile app with the addition of the completed days history.
type record struct {
	Badges []models.Badge `json:"badges"`
	Streak
	CompletedDays []string `json:"completedDays,omitempty"`
	// Pending holds the IDs of earned badges not yet dismissed, oldest first
	Pending []string `json:"pending,omitempty"`
	// LastWeek and LastEarly are the keys of the last completed week and the
	// last day an early arrival was counted
	LastWeek  string `json:"lastWeek,omitempty"`
	LastEarly string `json:"lastEarly,omitempty"`
}

func (r *record) clone() record {
	return record{
		Badges:        slices.Clone(r.Badges),
		Streak:        r.Streak,
		CompletedDays: slices.Clone(r.CompletedDays),
		Pending:       slices.Clone(r.Pending),
		LastWeek:      r.LastWeek,
		LastEarly:     r.LastEarly,
	}
}

func (r *record) find(id string) *models.Badge {
	for i := range r.Badges {
		if r.Badges[i].ID == id {
			return &r.Badges[i]
		}
	}

	return nil
}

// earn marks the badge identified by id as earned. It reports false if the
// badge was already earned or does not exist.
func (r *record) earn(id string, now time.Time) (models.Badge, bool) {
	b := r.find(id)
	if b == nil || b.Earned {
		return models.Badge{}, false
	}

	earnedAt := now

	b.Earned = true
	b.EarnedDate = &earnedAt

	if b.Target > 0 {
		b.Progress = max(b.Progress, b.Target)
	}

	return *b, true
}

func seed() record {
	r := record{
		Badges: make([]models.Badge, 0, len(Catalog)),
	}

	for _, d := range Catalog {
		r.Badges = append(r.Badges, d.badge())
	}

	return r
}

// mutation changes r and returns the badges it earned. changed is false when
// nothing needs to be saved.
type mutation func(r *record, now time.Time) (earned []models.Badge, changed bool)

// Engine holds the badge catalog state and the day streak. It is safe for
// concurrent use.
type Engine struct {
	kv    store.KV
	now   func() time.Time
	state record
	mu    sync.Mutex
}

// NewEngine returns an engine persisted to kv. Load must be called before
// the engine is used.
func NewEngine(kv store.KV, now func() time.Time) *Engine {
	return &Engine{
		kv:    kv,
		now:   now,
		state: seed(),
	}
}

// Load reads the saved badges and streak. On first run the catalog is saved
// with nothing earned.
func (e *Engine) Load() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var stored record

	ok, err := store.GetJSON(e.kv, store.KeyBadges, &stored)
	if err != nil {
		return errLoad.Wrap(err)
	}

	if !ok {
		fresh := seed()

		if err := store.SetJSON(e.kv, store.KeyBadges, fresh); err != nil {
			return errSave.Wrap(err)
		}

		e.state = fresh

		return nil
	}

	e.state = merge(stored, e.now().Location())

	return nil
}

// merge keeps the earned state and progress of stored badges while taking
// everything else from the catalog.
func merge(stored record, loc *time.Location) record {
	r := seed()

	for i := range r.Badges {
		b := &r.Badges[i]

		if old := stored.find(b.ID); old != nil {
			b.Earned = old.Earned
			b.EarnedDate = old.EarnedDate
			b.Progress = old.Progress
		}
	}

	r.Streak = stored.Streak
	r.Streak.normalize(loc)
	r.CompletedDays = stored.CompletedDays
	r.LastWeek = stored.LastWeek
	r.LastEarly = stored.LastEarly

	for _, id := range stored.Pending {
		if r.find(id) != nil {
			r.Pending = append(r.Pending, id)
		}
	}

	return r
}

// latest returns the saved state, which another process sharing the store
// may have changed since it was last read. Must be called with the lock held.
func (e *Engine) latest() (record, error) {
	var stored record

	ok, err := store.GetJSON(e.kv, store.KeyBadges, &stored)
	if err != nil {
		return record{}, errLoad.Wrap(err)
	}

	if !ok {
		return e.state, nil
	}

	return merge(stored, e.now().Location()), nil
}

// Refresh re-reads the saved badges and streak.
func (e *Engine) Refresh() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.latest()
	if err != nil {
		return err
	}

	e.state = current

	return nil
}

func (e *Engine) apply(fn mutation) ([]models.Badge, error) {
	earned, _, err := e.update(fn)
	return earned, err
}

// update applies fn to the latest saved state and persists the result. changed
// reports whether anything was written.
func (e *Engine) update(fn mutation) (earned []models.Badge, changed bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.latest()
	if err != nil {
		return nil, false, err
	}

	e.state = current
	next := current.clone()

	earned, changed = fn(&next, e.now())
	if !changed {
		return nil, false, nil
	}

	for _, b := range earned {
		next.Pending = append(next.Pending, b.ID)
	}

	if err := store.SetJSON(e.kv, store.KeyBadges, next); err != nil {
		slog.Error("saving badges failed", slog.Any("error", err))
		return nil, false, errSave.Wrap(err)
	}

	e.state = next

	for _, b := range earned {
		slog.Info("badge earned", slog.String("id", b.ID))
	}

	return earned, true, nil
}

// RecordDayCompleted registers the completion of the school day on today: the
// streak is updated and the day badges are checked in a single write. recorded
// is false when today had already been recorded.
func (e *Engine) RecordDayCompleted(today time.Time) (earned []models.Badge, recorded bool, err error) {
	return e.update(func(r *record, now time.Time) ([]models.Badge, bool) {
		if !r.Streak.Record(today) {
			return nil, false
		}

		r.CompletedDays = rememberDay(r.CompletedDays, today)

		earned, _ := dayComplete(r, now)

		if b, ok := perfectMonth(r, today, now); ok {
			earned = append(earned, b)
		}

		return earned, true
	})
}

// RecordDayComplete earns the first day badge and checks the streak badges
// against the current streak. The streak itself is not changed.
func (e *Engine) RecordDayComplete() ([]models.Badge, error) {
	return e.apply(dayComplete)
}

func dayComplete(r *record, now time.Time) ([]models.Badge, bool) {
	var earned []models.Badge

	if b, ok := r.earn(FirstDay, now); ok {
		earned = append(earned, b)
	}

	earned = append(earned, streakThresholds(r, r.DayStreak, now)...)

	return earned, len(earned) > 0
}

// RecordWeekComplete registers the completion of the school week containing
// today and earns the week badge. recorded is false when the week had already
// been recorded.
func (e *Engine) RecordWeekComplete(today time.Time) (earned []models.Badge, recorded bool, err error) {
	key := timeutil.WeekKey(today)

	return e.update(func(r *record, now time.Time) ([]models.Badge, bool) {
		if r.LastWeek == key {
			return nil, false
		}

		r.LastWeek = key

		if b, ok := r.earn(WeekComplete, now); ok {
			return []models.Badge{b}, true
		}

		return nil, true
	})
}

// RecordEarlyArrival counts an early arrival on today toward the habit badges.
// Only the first arrival of a day is counted.
func (e *Engine) RecordEarlyArrival(today time.Time) (earned []models.Badge, recorded bool, err error) {
	key := timeutil.DayKey(today)

	return e.update(func(r *record, now time.Time) ([]models.Badge, bool) {
		if r.LastEarly == key {
			return nil, false
		}

		r.LastEarly = key

		got, _ := progress(r, ActivityEarlyArrival, 1, now)

		return got, true
	})
}

// CheckStreakThresholds earns every streak badge whose day threshold is
// covered by a streak of days.
func (e *Engine) CheckStreakThresholds(days int) ([]models.Badge, error) {
	return e.apply(func(r *record, now time.Time) ([]models.Badge, bool) {
		earned := streakThresholds(r, days, now)
		return earned, len(earned) > 0
	})
}

func streakThresholds(r *record, days int, now time.Time) []models.Badge {
	var earned []models.Badge

	for _, d := range Catalog {
		if d.Type != models.Streak || d.Days == 0 || days < d.Days {
			continue
		}

		if b, ok := r.earn(d.ID, now); ok {
			earned = append(earned, b)
		}
	}

	return earned
}

// UpdateActivityProgress advances every unearned badge bound to kind by
// increment. Unknown kinds and non-positive increments change nothing.
func (e *Engine) UpdateActivityProgress(kind string, increment int) ([]models.Badge, error) {
	return e.apply(func(r *record, now time.Time) ([]models.Badge, bool) {
		return progress(r, kind, increment, now)
	})
}

func progress(r *record, kind string, increment int, now time.Time) ([]models.Badge, bool) {
	if increment <= 0 {
		return nil, false
	}

	var (
		earned  []models.Badge
		changed bool
	)

	for _, d := range Catalog {
		if d.Activity != kind {
			continue
		}

		b := r.find(d.ID)
		if b == nil || b.Earned {
			continue
		}

		b.Progress += increment
		changed = true

		if b.Progress >= d.Target {
			if badge, ok := r.earn(d.ID, now); ok {
				earned = append(earned, badge)
			}
		}
	}

	return earned, changed
}

// perfectMonth earns the month badge once every weekday of the month of
// today has been completed.
func perfectMonth(r *record, today, now time.Time) (models.Badge, bool) {
	done := make(map[string]bool, len(r.CompletedDays))
	for _, d := range r.CompletedDays {
		done[d] = true
	}

	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	for d := first; d.Month() == today.Month(); d = d.AddDate(0, 0, 1) {
		if !timeutil.IsWeekend(d) && !done[timeutil.DayKey(d)] {
			return models.Badge{}, false
		}
	}

	return r.earn(PerfectMonth, now)
}

func rememberDay(days []string, today time.Time) []string {
	key := timeutil.DayKey(today)
	if !slices.Contains(days, key) {
		days = append(days, key)
	}

	cutoff := timeutil.DayKey(today.AddDate(0, 0, -historyDays))

	return slices.DeleteFunc(days, func(d string) bool {
		return d < cutoff
	})
}

// Pending returns the oldest earned badge that has not been dismissed.
func (e *Engine) Pending() (models.Badge, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, id := range e.state.Pending {
		if b := e.state.find(id); b != nil {
			return *b, true
		}
	}

	return models.Badge{}, false
}

// PendingCount returns the number of badges awaiting dismissal.
func (e *Engine) PendingCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.state.Pending)
}

// DismissNotification removes the badge returned by Pending.
func (e *Engine) DismissNotification() error {
	_, err := e.apply(func(r *record, _ time.Time) ([]models.Badge, bool) {
		if len(r.Pending) == 0 {
			return nil, false
		}

		r.Pending = r.Pending[1:]

		return nil, true
	})

	return err
}

// DismissAll clears every pending notification.
func (e *Engine) DismissAll() error {
	_, err := e.apply(func(r *record, _ time.Time) ([]models.Badge, bool) {
		if len(r.Pending) == 0 {
			return nil, false
		}

		r.Pending = nil

		return nil, true
	})

	return err
}

// Badges returns a copy of every badge in catalog order.
func (e *Engine) Badges() []models.Badge {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.state.Badges)
}

// Streak returns the current day streak.
func (e *Engine) Streak() models.StreakState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.StreakState
}
