// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/schoolday/internal/apperr"
)

const (
	minutesInAnHour = 60
	secondsInAnHour = 3600
	MinutesInADay   = 1440
)

// DayLayout is the format of calendar day keys.
const DayLayout = "2006-01-02"

// legacyDayLayout matches the date strings saved by the mobile app.
const legacyDayLayout = "Mon Jan 02 2006"

var (
	ErrInvalidClock = &apperr.Error{
		Message: "invalid time %q: expected a 12-hour time such as 8:30 AM",
	}

	ErrInvalidDate = &apperr.Error{
		Message: "invalid date %q: expected a date such as 9/1/2025",
	}
)

var clockRegex = regexp.MustCompile(
	`^(1[0-2]|0?[1-9]):([0-5][0-9])\s*([AaPp][Mm])$`,
)

var dateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	DayLayout,
	"1-2-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	legacyDayLayout,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// ValidateClock reports whether s is a valid 12-hour clock time.
func ValidateClock(s string) bool {
	return clockRegex.MatchString(strings.TrimSpace(s))
}

// ParseClock converts a 12-hour clock time such as "8:30 AM" to minutes
// since midnight.
func ParseClock(s string) (int, error) {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, ErrInvalidClock.Fmt(s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	pm := strings.EqualFold(m[3], "pm")

	switch {
	case hour == 12 && !pm:
		hour = 0
	case pm && hour != 12:
		hour += 12
	}

	return hour*minutesInAnHour + minute, nil
}

// ClockToSeconds converts a 12-hour clock time to seconds since midnight.
func ClockToSeconds(s string) (int, error) {
	mins, err := ParseClock(s)
	if err != nil {
		return 0, err
	}

	return mins * 60, nil
}

// FormatClock renders minutes since midnight in the canonical 12-hour format
// accepted by ParseClock.
func FormatClock(minutes int) string {
	minutes = ((minutes % MinutesInADay) + MinutesInADay) % MinutesInADay

	hrs, mins := MinsToHoursAndMins(minutes)

	period := "AM"
	if hrs >= 12 {
		period = "PM"
	}

	hrs %= 12
	if hrs == 0 {
		hrs = 12
	}

	return fmt.Sprintf("%d:%02d %s", hrs, mins, period)
}

// FormatDuration renders a number of seconds as "1h 5m", "5m 30s" or "30s".
// Negative values render as "0s".
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	hrs, mins := MinsToHoursAndMins(totalSeconds / 60)
	secs := totalSeconds % 60

	switch {
	case totalSeconds >= secondsInAnHour:
		return fmt.Sprintf("%dh %dm", hrs, mins)
	case totalSeconds >= 60:
		return fmt.Sprintf("%dm %ds", mins, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// MinuteOfDay returns the wall-clock minutes elapsed since midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*minutesInAnHour + t.Minute()
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// Yesterday returns the start of the day before t.
func Yesterday(t time.Time) time.Time {
	return RoundToStart(t).AddDate(0, 0, -1)
}

// DayKey identifies the calendar day of t.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// WeekKey identifies the ISO week of t.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()

	return fmt.Sprintf("%d-W%02d", year, week)
}

// ParseDayKey parses a day key. Dates in the legacy mobile app format
// ("Wed Oct 15 2025") are accepted as well.
func ParseDayKey(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{DayLayout, legacyDayLayout} {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate.Fmt(s)
}

// ParseDate parses a calendar date in the location of now. Common numeric
// layouts are tried first before falling back to natural language parsing.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate.Fmt(s)
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err == nil {
			return t, nil
		}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
		Languages:   []string{"en"},
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate.Fmt(s)
	}

	return time.Date(
		dt.Time.Year(),
		dt.Time.Month(),
		dt.Time.Day(),
		0,
		0,
		0,
		0,
		now.Location(),
	), nil
}

// WithinDays reports whether the calendar day of t falls within the calendar
// days of start and end inclusive.
func WithinDays(t, start, end time.Time) bool {
	day := DayKey(t)

	return day >= DayKey(start) && day <= DayKey(end)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()

	return wd == time.Saturday || wd == time.Sunday
}
