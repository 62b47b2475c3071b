package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ayoisaiah/schoolday/clock"
	"github.com/ayoisaiah/schoolday/internal/config"
	"github.com/ayoisaiah/schoolday/internal/models"
	"github.com/ayoisaiah/schoolday/internal/ui"
	"github.com/ayoisaiah/schoolday/schooltime"
)

const plainBarWidth = 20

// Alerter reacts to the events of a snapshot.
type Alerter interface {
	Handle(s Snapshot)
}

// BadgeQueue is the badge engine as seen by the front ends.
type BadgeQueue interface {
	Badges
	Pending() (models.Badge, bool)
	PendingCount() int
	DismissNotification() error
}

// Options configures a tracker front end.
type Options struct {
	Config   *config.Config
	Registry *schooltime.Registry
	Badges   BadgeQueue
	Alerts   Alerter
	Now      func() time.Time
	Out      io.Writer
	// StatusPath is where the status file is written. It is removed when the
	// tracker exits. Empty disables it.
	StatusPath string
	Stage      models.Stage
}

func (o *Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}

	return o.Now()
}

func (o *Options) writeStatus(s Snapshot) {
	if o.StatusPath == "" {
		return
	}

	if err := WriteStatusFile(o.StatusPath, s.Status()); err != nil {
		slog.Error("unable to write status file", slog.Any("error", err))
	}
}

func (o *Options) alert(s Snapshot) {
	if o.Alerts != nil && s.Eventful() {
		o.Alerts.Handle(s)
	}
}

func (o *Options) removeStatusFile() {
	if o.StatusPath == "" {
		return
	}

	err := os.Remove(o.StatusPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("unable to remove status file", slog.Any("error", err))
	}
}

// RunPlain prints one status line per tick until ctx is cancelled.
func RunPlain(ctx context.Context, opts *Options) error {
	m := NewMonitor(opts.Registry, opts.Badges, opts.Stage)
	defer m.Close()

	defer opts.removeStatusFile()

	out := opts.Out
	if out == nil {
		out = config.Stdout
	}

	// save the cursor position so each line can overwrite the last
	fmt.Fprint(out, "\033[s")

	ticker := clock.NewTicker(
		opts.Config.Display.TickInterval,
		opts.now,
		func(now time.Time) {
			s := m.Tick(now)

			fmt.Fprint(out, "\033[u\033[K"+PlainLine(s, opts.Config))

			opts.writeStatus(s)
			opts.alert(s)
		},
	)

	ticker.Start(ctx)
	defer ticker.Stop()

	<-ticker.Done()

	fmt.Fprintln(out)

	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}

	return ctx.Err()
}

// PlainLine renders s as a single line of text.
func PlainLine(s Snapshot, cfg *config.Config) string {
	var b strings.Builder

	b.WriteString(ui.Cyan("[" + s.Stage.Name() + "]"))
	b.WriteString(" ")

	switch {
	case s.Day.Phase == clock.InProgress && cfg.Display.Mode == config.ModeProgress:
		fmt.Fprintf(
			&b,
			"%s %3d%% %s",
			ui.Bar(s.Day.Percent, plainBarWidth),
			s.Day.Rounded(),
			s.Day.Message,
		)
	case s.Day.Phase == clock.InProgress:
		fmt.Fprintf(&b, "%s (%d%%)", ui.Green(s.Day.Message), s.Day.Rounded())
	default:
		b.WriteString(ui.Yellow(s.Day.Message))
	}

	if s.Week.Phase == clock.InProgress || s.Week.Phase == clock.AfterEnd {
		fmt.Fprintf(&b, " | week %d%% %s", s.Week.Rounded(), s.Week.Message)
	}

	fmt.Fprintf(&b, " | streak %s", ui.Magenta(s.Streak.DayStreak))

	for _, badge := range s.Earned {
		fmt.Fprintf(&b, " | %s %s earned", badge.Icon, badge.Name)
	}

	return b.String()
}
