package clock

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/timeutil"
)

// yearBounds parses the academic year of cfg. ok is false when either bound is
// unset or cannot be parsed.
func yearBounds(cfg models.StageTimeConfig, now time.Time) (start, end time.Time, ok bool) {
	if !cfg.HasYear() {
		return start, end, false
	}

	start, err := timeutil.ParseDate(cfg.YearStart, now)
	if err != nil {
		return start, end, false
	}

	end, err = timeutil.ParseDate(cfg.YearEnd, now)
	if err != nil {
		return start, end, false
	}

	return start, end, true
}

// InAcademicYear reports whether now falls on a calendar day between the
// configured year bounds, both inclusive. A stage without a usable academic
// year is always in session.
func InAcademicYear(cfg models.StageTimeConfig, now time.Time) bool {
	start, end, ok := yearBounds(cfg, now)
	if !ok {
		return true
	}

	return timeutil.WithinDays(now, start, end)
}

// AcademicYear returns a label such as "2025-2026" derived from the start of
// the academic year, or from the current year when none is configured.
func AcademicYear(cfg models.StageTimeConfig, now time.Time) string {
	year := now.Year()

	if cfg.YearStart != "" {
		if start, err := timeutil.ParseDate(cfg.YearStart, now); err == nil {
			year = start.Year()
		}
	}

	return fmt.Sprintf("%d-%d", year, year+1)
}
