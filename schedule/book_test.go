package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/schoolday/badge"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/store"
)

func newBook(t *testing.T) (*Book, *badge.Engine, *store.Memory) {
	t.Helper()

	kv := store.NewMemory()

	engine := badge.NewEngine(kv, time.Now)
	require.NoError(t, engine.Load())

	return NewBook(kv, engine), engine, kv
}

func progress(e *badge.Engine, id string) int {
	for _, b := range e.Badges() {
		if b.ID == id {
			return b.Progress
		}
	}

	return -1
}

func TestAddSortsByTime(t *testing.T) {
	book, engine, _ := newBook(t)

	for _, e := range []models.ScheduleEntry{
		{Time: "1:00 PM", Subject: "History", Location: "B2"},
		{Time: "8:30 AM", Subject: "Maths 10", Location: "A1"},
		{Time: "12:00 PM", Subject: "Lunch", Location: "Hall"},
		{Time: "8:30 AM", Subject: "Maths 9", Location: "A2"},
	} {
		_, err := book.Add(models.High, e)
		require.NoError(t, err)
	}

	got, err := book.Day(models.High)
	require.NoError(t, err)

	subjects := make([]string, 0, len(got))
	for _, e := range got {
		subjects = append(subjects, e.Subject)
	}

	assert.Equal(t, []string{"Maths 9", "Maths 10", "Lunch", "History"}, subjects)
	assert.Equal(t, 4, progress(engine, badge.ScheduleMaster))

	other, err := book.Day(models.College)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAddRejectsInvalidEntries(t *testing.T) {
	book, engine, kv := newBook(t)

	for _, e := range []models.ScheduleEntry{
		{Time: "8:30", Subject: "Maths", Location: "A1"},
		{Time: "8:30 AM", Location: "A1"},
		{Time: "8:30 AM", Subject: "Maths"},
	} {
		_, err := book.Add(models.High, e)
		assert.ErrorIs(t, err, errInvalidEntry)
	}

	_, ok, _ := kv.Get(store.KeySchedule)
	assert.False(t, ok)
	assert.Equal(t, 0, progress(engine, badge.ScheduleMaster))
}

func TestScheduleMasterEarnedAtTarget(t *testing.T) {
	book, _, _ := newBook(t)

	entry := models.ScheduleEntry{Time: "9:00 AM", Subject: "Art", Location: "Studio"}

	for i := 1; i <= 9; i++ {
		earned, err := book.Add(models.Middle, entry)
		require.NoError(t, err)
		assert.Empty(t, earned, "item %d", i)
	}

	earned, err := book.Add(models.Middle, entry)
	require.NoError(t, err)
	require.Len(t, earned, 1)
	assert.Equal(t, badge.ScheduleMaster, earned[0].ID)
}

func TestAddToDay(t *testing.T) {
	book, engine, _ := newBook(t)

	for _, d := range Weekdays {
		_, err := book.AddToDay(models.College, d, models.ScheduleEntry{
			Time:     "10:00 AM",
			Subject:  "Lecture",
			Location: "Room " + d.String(),
		})
		require.NoError(t, err)
	}

	week, err := book.Week(models.College)
	require.NoError(t, err)

	assert.True(t, week.Full())
	assert.Len(t, week.Entries(time.Wednesday), 1)
	assert.Equal(t, 5, progress(engine, badge.ScheduleMaster))

	_, err = book.AddToDay(models.College, time.Saturday, models.ScheduleEntry{
		Time: "10:00 AM", Subject: "Club", Location: "Field",
	})
	assert.ErrorIs(t, err, errInvalidDay)
}

func TestWeekUsesLowercaseDayNames(t *testing.T) {
	book, _, kv := newBook(t)

	_, err := book.AddToDay(models.High, time.Monday, models.ScheduleEntry{
		Time: "8:00 AM", Subject: "Biology", Location: "Lab",
	})
	require.NoError(t, err)

	v, _, _ := kv.Get(store.KeyWeeklySchedule)
	assert.JSONEq(
		t,
		`{"high":{"monday":[{"time":"8:00 AM","subject":"Biology","location":"Lab"}]}}`,
		v,
	)
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"monday":  time.Monday,
		"Tue":     time.Tuesday,
		" FRIDAY": time.Friday,
		"thurs":   time.Thursday,
	}

	for in, want := range cases {
		got, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"saturday", "su", "m", ""} {
		_, err := ParseWeekday(in)
		assert.Error(t, err, in)
	}
}
