package tracker

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/schoolday/internal/apperr"
	"github.com/ayoisaiah/schoolday/internal/config"
)

var errDayEndCmd = &apperr.Error{
	Message: "unable to parse day_end_cmd option",
}

// Alerts raises desktop notifications, plays the bell and runs the day end
// command for the events in a snapshot.
type Alerts struct {
	notify    func(title, message, icon string) error
	chime     func() error
	run       func(name string, args ...string) error
	icon      string
	dayEndCmd string
	enabled   bool
	sound     bool
}

// NewAlerts returns alerts configured from cfg.
func NewAlerts(cfg *config.Config) *Alerts {
	// icon is an empty string if the file is not found
	icon, _ := xdg.SearchDataFile(filepath.Join("schoolday", "icon.png"))

	return &Alerts{
		notify: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
		chime: playChime,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
		icon:      icon,
		dayEndCmd: cfg.Settings.DayEndCmd,
		enabled:   cfg.Notifications.Enabled,
		sound:     cfg.Notifications.Sound,
	}
}

// Handle acts on the events of s. It blocks while the bell plays and the day
// end command runs.
func (a *Alerts) Handle(s Snapshot) {
	if a.enabled {
		for _, b := range s.Earned {
			a.send(fmt.Sprintf("Badge earned: %s %s", b.Icon, b.Name), b.Description)
		}

		if s.DayCompleted {
			a.send(
				"School day complete",
				fmt.Sprintf("%s: day streak is now %d", s.Stage.Name(), s.Streak.DayStreak),
			)
		}

		if s.WeekCompleted {
			a.send("School week complete", "Enjoy the weekend!")
		}
	}

	if !s.DayCompleted {
		return
	}

	if a.enabled && a.sound {
		if err := a.chime(); err != nil {
			slog.Error("unable to play sound", slog.Any("error", err))
		}
	}

	if err := a.runDayEndCmd(); err != nil {
		slog.Error("day end command failed", slog.Any("error", err))
	}
}

func (a *Alerts) send(title, message string) {
	if err := a.notify(title, message, a.icon); err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// runDayEndCmd executes the configured command.
func (a *Alerts) runDayEndCmd() error {
	if a.dayEndCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(a.dayEndCmd)
	if err != nil {
		return errDayEndCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return a.run(cmdSlice[0], cmdSlice[1:]...)
}
