package tracker

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/schoolday/clock"
	"github.com/ayoisaiah/schoolday/internal/config"
)

func (t *Tracker) headerView() string {
	format := "3:04 PM"
	if t.opts.Config.Display.TwentyFourHour {
		format = "15:04"
	}

	title := t.snap.Stage.Name()
	if t.snap.AcademicYear != "" {
		title += " " + t.snap.AcademicYear
	}

	return t.style.title.Render(title) + "  " +
		t.style.secondary.Render(t.snap.Time.Format(format))
}

func (t *Tracker) dayView() string {
	day := t.snap.Day

	switch day.Phase {
	case clock.InProgress:
		if t.mode == config.ModeCountdown {
			return t.style.countdown.Render(day.Message)
		}

		return t.progress.ViewAs(day.Percent/100) + "\n" +
			t.style.hint.Render(day.Message)
	case clock.AfterEnd:
		if t.mode == config.ModeCountdown {
			return t.style.countdown.Render(day.Message)
		}

		return t.progress.ViewAs(1) + "\n" + t.style.hint.Render(day.Message)
	}

	return t.style.secondary.Render(day.Message)
}

func (t *Tracker) weekView() string {
	week := t.snap.Week

	if week.Phase != clock.InProgress && week.Phase != clock.AfterEnd {
		return ""
	}

	return t.style.secondary.Render(
		fmt.Sprintf("Week %d%%: %s", week.Rounded(), week.Message),
	)
}

func (t *Tracker) streakView() string {
	n := t.snap.Streak.DayStreak

	unit := "days"
	if n == 1 {
		unit = "day"
	}

	return fmt.Sprintf("🔥 %d %s streak", n, unit)
}

func (t *Tracker) badgeView() string {
	b, ok := t.opts.Badges.Pending()
	if !ok {
		return ""
	}

	body := fmt.Sprintf("%s %s\n%s", b.Icon, b.Name, b.Description)

	if more := t.opts.Badges.PendingCount() - 1; more > 0 {
		body += t.style.hint.Render(fmt.Sprintf("\n+%d more", more))
	}

	return t.style.badge.Render(body)
}

func (t *Tracker) View() string {
	if t.hours != nil {
		return t.style.base.Render(t.hours.form.View())
	}

	var s strings.Builder

	s.WriteString(t.headerView())
	s.WriteString("\n\n" + t.dayView())

	if week := t.weekView(); week != "" {
		s.WriteString("\n\n" + week)
	}

	s.WriteString("\n" + t.streakView())

	if badge := t.badgeView(); badge != "" {
		s.WriteString("\n\n" + badge)
	}

	if t.err != nil {
		s.WriteString("\n\n" + t.style.err.Render(t.err.Error()))
	}

	s.WriteString("\n\n" + t.help.View(defaultKeymap))

	return t.style.base.Render(s.String())
}
