// Package schedule keeps the daily and weekly class schedule of every stage.
package schedule

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/schoolday/badge"
	"github.com/ayoisaiah/schoolday/internal/apperr"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/timeutil"
	"github.com/ayoisaiah/schoolday/internal/validation"
	"github.com/ayoisaiah/schoolday/store"
)

var (
	errInvalidEntry = &apperr.Error{
		Message: "schedule entries need a time (e.g. 8:30 AM), a subject and a location",
	}

	errInvalidDay = &apperr.Error{
		Message: "%q is not a school day (monday to friday)",
	}

	errSave = &apperr.Error{
		Message: "unable to save schedule",
	}
)

// Weekdays lists the school days in order.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// Recorder receives activity updates for progress badges.
type Recorder interface {
	UpdateActivityProgress(kind string, increment int) ([]models.Badge, error)
}

// Week maps lowercase day names to the entries of that day.
type Week map[string][]models.ScheduleEntry

// Book stores schedule entries under the daily and weekly schedule keys. Each
// key holds a JSON object keyed by stage.
type Book struct {
	kv       store.KV
	badges   Recorder
	validate *validator.Validate
	mu       sync.Mutex
}

func NewBook(kv store.KV, badges Recorder) *Book {
	return &Book{
		kv:       kv,
		badges:   badges,
		validate: validation.New(time.Now),
	}
}

// ParseWeekday parses a school day name such as "monday" or "Fri".
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for _, d := range Weekdays {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}

	return 0, errInvalidDay.Fmt(s)
}

func dayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// Sort orders entries by time of day. Entries at the same time are ordered
// by subject.
func Sort(entries []models.ScheduleEntry) {
	slices.SortStableFunc(entries, func(a, b models.ScheduleEntry) int {
		am, _ := timeutil.ParseClock(a.Time)
		bm, _ := timeutil.ParseClock(b.Time)

		if am != bm {
			return am - bm
		}

		switch {
		case natural.Less(a.Subject, b.Subject):
			return -1
		case natural.Less(b.Subject, a.Subject):
			return 1
		}

		return 0
	})
}

func (b *Book) check(entry models.ScheduleEntry) error {
	if err := b.validate.Struct(entry); err != nil {
		return errInvalidEntry.Wrap(err)
	}

	return nil
}

// Day returns the daily schedule of stage.
func (b *Book) Day(stage models.Stage) ([]models.ScheduleEntry, error) {
	all := make(map[models.Stage][]models.ScheduleEntry)

	if _, err := store.GetJSON(b.kv, store.KeySchedule, &all); err != nil {
		return nil, err
	}

	return all[stage], nil
}

// Week returns the weekly schedule of stage.
func (b *Book) Week(stage models.Stage) (Week, error) {
	all := make(map[models.Stage]Week)

	if _, err := store.GetJSON(b.kv, store.KeyWeeklySchedule, &all); err != nil {
		return nil, err
	}

	if all[stage] == nil {
		return Week{}, nil
	}

	return all[stage], nil
}

// Add appends entry to the daily schedule of stage.
func (b *Book) Add(stage models.Stage, entry models.ScheduleEntry) ([]models.Badge, error) {
	if err := b.check(entry); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	all := make(map[models.Stage][]models.ScheduleEntry)

	if _, err := store.GetJSON(b.kv, store.KeySchedule, &all); err != nil {
		return nil, err
	}

	entries := append(slices.Clone(all[stage]), entry)
	Sort(entries)
	all[stage] = entries

	if err := store.SetJSON(b.kv, store.KeySchedule, all); err != nil {
		return nil, errSave.Wrap(err)
	}

	return b.record(badge.ActivityScheduleItemAdded)
}

// AddToDay appends entry to the schedule of one weekday. Once every school
// day has at least one entry the full week activity is recorded.
func (b *Book) AddToDay(
	stage models.Stage,
	day time.Weekday,
	entry models.ScheduleEntry,
) ([]models.Badge, error) {
	if !slices.Contains(Weekdays, day) {
		return nil, errInvalidDay.Fmt(dayKey(day))
	}

	if err := b.check(entry); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	all := make(map[models.Stage]Week)

	if _, err := store.GetJSON(b.kv, store.KeyWeeklySchedule, &all); err != nil {
		return nil, err
	}

	week := all[stage]
	if week == nil {
		week = Week{}
	}

	entries := append(slices.Clone(week[dayKey(day)]), entry)
	Sort(entries)
	week[dayKey(day)] = entries
	all[stage] = week

	if err := store.SetJSON(b.kv, store.KeyWeeklySchedule, all); err != nil {
		return nil, errSave.Wrap(err)
	}

	earned, err := b.record(badge.ActivityScheduleItemAdded)
	if err != nil {
		return earned, err
	}

	if week.Full() {
		more, err := b.record(badge.ActivityFullWeekScheduled)
		earned = append(earned, more...)

		return earned, err
	}

	return earned, nil
}

// Full reports whether every school day has at least one entry.
func (w Week) Full() bool {
	for _, d := range Weekdays {
		if len(w[dayKey(d)]) == 0 {
			return false
		}
	}

	return true
}

// Entries returns the entries of day.
func (w Week) Entries(day time.Weekday) []models.ScheduleEntry {
	return w[dayKey(day)]
}

func (b *Book) record(kind string) ([]models.Badge, error) {
	if b.badges == nil {
		return nil, nil
	}

	earned, err := b.badges.UpdateActivityProgress(kind, 1)
	if err != nil {
		// the entry itself was saved
		slog.Error(
			"recording schedule activity failed",
			slog.String("activity", kind),
			slog.Any("error", err),
		)
	}

	return earned, err
}
