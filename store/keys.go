package store

// Keys under which the application state is saved. The values are JSON
// documents compatible with the mobile app's storage layout.
const (
	KeySchoolTimes    = "schoolTimes"
	KeySchedule       = "scheduleData"
	KeyWeeklySchedule = "weeklyScheduleData"
	KeyQuarter        = "quarterData"
	KeySemester       = "semesterData"
	KeyTrimester      = "trimesterData"
	KeyBadges         = "SCHOOL_TIMER_BADGES"
	KeySelectedStage  = "selectedStage"
)

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)
