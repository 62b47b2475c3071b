package tracker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/schoolday/internal/config"
	"github.com/ayoisaiah/schoolday/internal/models"
)

type tickMsg time.Time

// savedMsg reports the result of saving the hours form.
type savedMsg struct {
	err error
}

// Tracker is the interactive school day view.
type Tracker struct {
	opts     *Options
	monitor  *Monitor
	style    style
	hours    *hoursForm
	err      error
	snap     Snapshot
	mode     config.DisplayMode
	help     help.Model
	progress progress.Model
}

// New returns a tracker for opts.Stage. Call Close once the program exits.
func New(opts *Options) *Tracker {
	return &Tracker{
		opts:     opts,
		monitor:  NewMonitor(opts.Registry, opts.Badges, opts.Stage),
		style:    newStyle(opts.Config.Display.DarkTheme),
		mode:     opts.Config.Display.Mode,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// Run starts the tracker and blocks until the user quits.
func Run(opts *Options) error {
	t := New(opts)
	defer t.Close()

	_, err := tea.NewProgram(t, tea.WithAltScreen()).Run()

	return err
}

// Close stops following the registry and removes the status file.
func (t *Tracker) Close() {
	t.monitor.Close()
	t.opts.removeStatusFile()
}

// Snapshot returns the result of the last tick.
func (t *Tracker) Snapshot() Snapshot {
	return t.snap
}

func (t *Tracker) Stage() models.Stage {
	return t.monitor.Stage()
}

func (t *Tracker) Init() tea.Cmd {
	now := t.opts.now()

	return func() tea.Msg {
		return tickMsg(now)
	}
}

func (t *Tracker) tick() tea.Cmd {
	return tea.Tick(t.opts.Config.Display.TickInterval, func(time.Time) tea.Msg {
		return tickMsg(t.opts.now())
	})
}
