package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/schoolday/badge"
	"github.com/ayoisaiah/schoolday/clock"
	"github.com/ayoisaiah/schoolday/internal/config"
	"github.com/ayoisaiah/schoolday/internal/logger"
	"github.com/ayoisaiah/schoolday/internal/pathutil"
	"github.com/ayoisaiah/schoolday/internal/static"
	"github.com/ayoisaiah/schoolday/internal/ui"
	"github.com/ayoisaiah/schoolday/schedule"
	"github.com/ayoisaiah/schoolday/schooltime"
	"github.com/ayoisaiah/schoolday/store"
	"github.com/ayoisaiah/schoolday/tracker"
)

const (
	envNoColor          = "NO_COLOR"
	envSchooldayNoColor = "SCHOOLDAY_NO_COLOR"
)

// services are the stores and engines shared by every command.
type services struct {
	kv       store.KV
	registry *schooltime.Registry
	badges   *badge.Engine
	book     *schedule.Book
}

func (s *services) Close() error {
	return s.kv.Close()
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the configuration and starts logging. The returned closer
// flushes the log file.
func loadConfig(ctx *cli.Context) (*config.Config, io.Closer, error) {
	path := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, nil, err
	}

	logs := logger.Init(pathutil.LogFilePath(), cfg.Settings.Debug)

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, logs, nil
}

// openServices opens the configured store and loads the saved state.
func openServices(cfg *config.Config) (*services, error) {
	kv, err := store.Open(
		cfg.Storage.Driver,
		pathutil.DBFilePath(),
		pathutil.SQLiteFilePath(),
	)
	if err != nil {
		return nil, err
	}

	s := &services{
		kv:       kv,
		registry: schooltime.NewRegistry(kv, time.Now),
		badges:   badge.NewEngine(kv, time.Now),
	}

	s.book = schedule.NewBook(kv, s.badges)

	if err := s.registry.Load(); err != nil {
		_ = kv.Close()
		return nil, err
	}

	if err := s.badges.Load(); err != nil {
		_ = kv.Close()
		return nil, err
	}

	return s, nil
}

// withServices runs fn with the configuration and services loaded.
func withServices(
	ctx *cli.Context,
	fn func(cfg *config.Config, s *services) error,
) error {
	cfg, logs, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer logs.Close()

	s, err := openServices(cfg)
	if err != nil {
		return err
	}

	defer s.Close()

	return fn(cfg, s)
}

// defaultAction starts the tracker for the selected stage.
func defaultAction(ctx *cli.Context) error {
	return withServices(ctx, func(cfg *config.Config, s *services) error {
		opts := &tracker.Options{
			Config:     cfg,
			Registry:   s.registry,
			Badges:     s.badges,
			Alerts:     tracker.NewAlerts(cfg),
			Now:        time.Now,
			Out:        config.Stdout,
			StatusPath: pathutil.StatusFilePath(),
			Stage:      cfg.ActiveStage(s.registry.Selected()),
		}

		slog.Info("starting tracker", slog.String("stage", string(opts.Stage)))

		if !cfg.CLI.Plain {
			return tracker.Run(opts)
		}

		sigCtx, stop := signal.NotifyContext(
			ctx.Context,
			os.Interrupt,
			syscall.SIGTERM,
		)
		defer stop()

		return tracker.RunPlain(sigCtx, opts)
	})
}

// statusAction prints the progress of the day. If a running tracker holds the
// store, its status file is reported instead.
func statusAction(ctx *cli.Context) error {
	cfg, logs, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer logs.Close()

	s, err := openServices(cfg)
	if store.IsLocked(err) {
		status, ok, readErr := tracker.ReadStatusFile(pathutil.StatusFilePath())
		if readErr != nil {
			return readErr
		}

		if !ok {
			return err
		}

		return printStatus(config.Stdout, status, cfg.CLI.JSON)
	}

	if err != nil {
		return err
	}

	defer s.Close()

	stage := cfg.ActiveStage(s.registry.Selected())
	times := s.registry.Times(stage)
	now := time.Now()

	status := tracker.Status{
		UpdatedAt:    now,
		Stage:        stage,
		StageName:    stage.Name(),
		AcademicYear: s.registry.AcademicYear(stage),
		Day:          clock.Evaluate(times, now),
		Week:         clock.EvaluateWeek(times, now),
		Streak:       s.badges.Streak(),
	}

	return printStatus(config.Stdout, status, cfg.CLI.JSON)
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/schoolday/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SCHOOLDAY_NO_COLOR is set
	if _, exists := os.LookupEnv(envSchooldayNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	// the icon only decorates notifications
	if err := static.Install(); err != nil {
		slog.Warn("unable to install static files", slog.Any("error", err))
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting schoolday")

	return nil
}
