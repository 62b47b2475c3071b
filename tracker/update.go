package tracker

import (
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/schoolday/internal/config"
	"github.com/ayoisaiah/schoolday/internal/models"
)

// evaluate runs the monitor at now and returns the commands that deliver its
// alerts. Alerts may block, so they run outside the render loop.
func (t *Tracker) evaluate(now time.Time) tea.Cmd {
	s := t.monitor.Tick(now)
	t.snap = s

	t.opts.writeStatus(s)

	if !s.Eventful() {
		return nil
	}

	return func() tea.Msg {
		t.opts.alert(s)
		return nil
	}
}

func (t *Tracker) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	return t, tea.Batch(t.evaluate(time.Time(msg)), t.tick())
}

// handleForm forwards msg to the hours form and saves the result once the
// form is completed.
func (t *Tracker) handleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return t, tea.Quit
		case key.Matches(keyMsg, defaultKeymap.esc):
			t.hours = nil
			return t, nil
		}
	}

	form, cmd := t.hours.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.hours.form = f
	}

	switch t.hours.form.State {
	case huh.StateCompleted:
		stage, cfg := t.hours.stage, *t.hours.cfg
		t.hours = nil

		return t, func() tea.Msg {
			return savedMsg{err: t.opts.Registry.Save(stage, cfg)}
		}
	case huh.StateAborted:
		t.hours = nil
		return t, nil
	}

	return t, cmd
}

// nextStage selects the stage after the current one.
func (t *Tracker) nextStage() tea.Cmd {
	i := slices.Index(models.Stages, t.monitor.Stage())
	next := models.Stages[(i+1)%len(models.Stages)]

	// the monitor follows the selection through its subscription
	if err := t.opts.Registry.SelectStage(next); err != nil {
		t.err = err
		return nil
	}

	t.err = nil

	return t.evaluate(t.opts.now())
}

func (t *Tracker) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Quit

	case key.Matches(msg, defaultKeymap.mode):
		if t.mode == config.ModeProgress {
			t.mode = config.ModeCountdown
		} else {
			t.mode = config.ModeProgress
		}

	case key.Matches(msg, defaultKeymap.dismiss):
		t.err = t.opts.Badges.DismissNotification()

	case key.Matches(msg, defaultKeymap.settings):
		stage := t.monitor.Stage()
		t.hours = newHoursForm(stage, t.opts.Registry.Times(stage))

		return t, t.hours.form.Init()

	case key.Matches(msg, defaultKeymap.next):
		return t, t.nextStage()

	case key.Matches(msg, defaultKeymap.help):
		t.help.ShowAll = !t.help.ShowAll
	}

	return t, nil
}

func (t *Tracker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.opts.Config.Settings.Debug {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case savedMsg:
		t.err = msg.err
		if msg.err != nil {
			slog.Error("unable to save school hours", slog.Any("error", msg.err))
			return t, nil
		}

		return t, t.evaluate(t.opts.now())
	}

	if t.hours != nil {
		return t.handleForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		t.help.Width = msg.Width

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
