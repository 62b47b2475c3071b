package models

import (
	"slices"
	"time"
)

// Stage is an education level. School hours are configured per stage.
type Stage string

const (
	Elementary Stage = "elementary"
	Middle     Stage = "middle"
	High       Stage = "high"
	College    Stage = "college"
)

// Stages lists every supported stage in display order.
var Stages = []Stage{Elementary, Middle, High, College}

// Valid reports whether s is one of the supported stages.
func (s Stage) Valid() bool {
	return slices.Contains(Stages, s)
}

// Name returns the human-friendly name of the stage.
func (s Stage) Name() string {
	switch s {
	case Elementary:
		return "Elementary School"
	case Middle:
		return "Middle School"
	case High:
		return "High School"
	case College:
		return "College"
	}

	return string(s)
}

// StageTimeConfig holds the school hours and academic year of a stage. All
// fields are optional; an empty field means "not configured".
type StageTimeConfig struct {
	// StartTime and EndTime are 12-hour clock strings such as "8:30 AM"
	StartTime string `json:"startTime" validate:"omitempty,clock"`
	EndTime   string `json:"endTime"   validate:"omitempty,clock"`
	// YearStart and YearEnd are calendar dates (month/day/year)
	YearStart string `json:"yearStart,omitempty" validate:"omitempty,date"`
	YearEnd   string `json:"yearEnd,omitempty"   validate:"omitempty,date"`
}

// HasHours reports whether both the start and end of the day are set.
func (c StageTimeConfig) HasHours() bool {
	return c.StartTime != "" && c.EndTime != ""
}

// HasYear reports whether both academic year bounds are set.
func (c StageTimeConfig) HasYear() bool {
	return c.YearStart != "" && c.YearEnd != ""
}

// ScheduleEntry is a single row of a day's schedule.
type ScheduleEntry struct {
	Time     string `json:"time"     validate:"required,clock"`
	Subject  string `json:"subject"  validate:"required"`
	Location string `json:"location" validate:"required"`
}

// StreakState tracks consecutive completed school days.
type StreakState struct {
	// LastCompletedDate is formatted as 2006-01-02 or empty
	LastCompletedDate string `json:"lastDay"`
	DayStreak         int    `json:"streak"`
}

type BadgeType string

const (
	Milestone BadgeType = "milestone"
	Streak    BadgeType = "streak"
	Habit     BadgeType = "habit"
	Activity  BadgeType = "activity"
)

// Badge is an achievement. Only Earned, EarnedDate and Progress change after
// the badge is created from the catalog.
type Badge struct {
	EarnedDate  *time.Time `json:"earnedDate"`
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Type        BadgeType  `json:"type"`
	Progress    int        `json:"progress"`
	Target      int        `json:"target,omitempty"`
	Earned      bool       `json:"earned"`
}
