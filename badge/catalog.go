// Package badge tracks the day streak and the achievements earned by
// completing school days, weeks and activities.
package badge

import (
	"github.com/ayoisaiah/schoolday/internal/models"
)

// Activities that advance progress badges.
const (
	ActivityEarlyArrival      = "early_arrival"
	ActivityScheduleItemAdded = "schedule_item_added"
	ActivityFullWeekScheduled = "full_week_scheduled"
)

const (
	FirstDay       = "first_day"
	ThreeDayStreak = "three_day_streak"
	WeekComplete   = "week_complete"
	EarlyBird      = "early_bird"
	ScheduleMaster = "schedule_master"
	PerfectMonth   = "perfect_month"
)

// Definition describes a badge in the catalog.
type Definition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Type        models.BadgeType
	// Days is the streak length that earns a streak badge
	Days int
	// Activity and Target apply to habit and activity badges
	Activity string
	Target   int
}

// Catalog lists every badge that can be earned.
var Catalog = []Definition{
	{
		ID:          FirstDay,
		Name:        "First Day Complete",
		Description: "Complete your first school day",
		Icon:        "🏅",
		Type:        models.Milestone,
	},
	{
		ID:          ThreeDayStreak,
		Name:        "On a Roll",
		Description: "Complete school 3 days in a row",
		Icon:        "🔥",
		Type:        models.Streak,
		Days:        3,
	},
	{
		ID:          WeekComplete,
		Name:        "Week Champion",
		Description: "Complete a full school week",
		Icon:        "🏆",
		Type:        models.Milestone,
	},
	{
		ID:          EarlyBird,
		Name:        "Early Bird",
		Description: "Start 5 school days before the bell",
		Icon:        "🐦",
		Type:        models.Habit,
		Activity:    ActivityEarlyArrival,
		Target:      5,
	},
	{
		ID:          ScheduleMaster,
		Name:        "Schedule Master",
		Description: "Add 10 items to your schedule",
		Icon:        "📝",
		Type:        models.Activity,
		Activity:    ActivityScheduleItemAdded,
		Target:      10,
	},
	{
		ID:          PerfectMonth,
		Name:        "Monthly Master",
		Description: "Complete all school days in a month",
		Icon:        "⭐️",
		Type:        models.Milestone,
	},
}

func definition(id string) (Definition, bool) {
	for _, d := range Catalog {
		if d.ID == id {
			return d, true
		}
	}

	return Definition{}, false
}

func (d Definition) badge() models.Badge {
	return models.Badge{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		Type:        d.Type,
		Target:      d.Target,
	}
}
