package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/schoolday/internal/models"
)

func defaultConfig() *Config {
	return &Config{
		Stage: models.High,
		Display: DisplayConfig{
			Mode:         ModeProgress,
			TickInterval: time.Second,
			DarkTheme:    true,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Storage: StorageConfig{
			Driver: "bolt",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "default config should be written")

	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	// reading the written file back yields the same values
	again, err := New(WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	b, err := os.ReadFile(filepath.Join("testdata", "modified_config.yml"))
	require.NoError(t, err)

	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, b, 0o600))

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	want := &Config{
		Stage: models.College,
		Display: DisplayConfig{
			Mode:           ModeCountdown,
			TickInterval:   5 * time.Second,
			TwentyFourHour: true,
		},
		Notifications: NotificationConfig{
			Sound: true,
		},
		Settings: SettingsConfig{
			DayEndCmd: `notify-send "school is out"`,
			Debug:     true,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
		},
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptValuesAreWritten(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := &Config{}
	applyPromptOptions(cfg, PromptOptions{
		Stage:          models.Elementary,
		Mode:           ModeCountdown,
		TwentyFourHour: true,
	})

	require.NoError(t, WithViperConfig(configPath)(cfg))

	reloaded, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, models.Elementary, reloaded.Stage)
	assert.Equal(t, ModeCountdown, reloaded.Display.Mode)
	assert.True(t, reloaded.Display.TwentyFourHour)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		modify  func(c *Config)
		wantErr error
	}{
		"defaults": {
			modify: func(*Config) {},
		},
		"tick too fast": {
			modify:  func(c *Config) { c.Display.TickInterval = 500 * time.Millisecond },
			wantErr: errInvalidTickInterval,
		},
		"tick too slow": {
			modify:  func(c *Config) { c.Display.TickInterval = 2 * time.Minute },
			wantErr: errInvalidTickInterval,
		},
		"unknown mode": {
			modify:  func(c *Config) { c.Display.Mode = "gauge" },
			wantErr: errInvalidDisplayMode,
		},
		"unknown stage": {
			modify:  func(c *Config) { c.Stage = "kindergarten" },
			wantErr: errInvalidStage,
		},
		"unknown stage flag": {
			modify:  func(c *Config) { c.CLI.Stage = "university" },
			wantErr: errInvalidStage,
		},
		"unknown driver": {
			modify:  func(c *Config) { c.Storage.Driver = "postgres" },
			wantErr: errInvalidDriver,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := defaultConfig()
			tc.modify(c)

			err := c.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCLIConfig(t *testing.T) {
	f := flag.NewFlagSet("schoolday", flag.ContinueOnError)
	f.String("stage", "", "")
	f.String("interval", "", "")
	f.String("day-end-cmd", "", "")
	f.Bool("disable-notification", false, "")
	f.Bool("plain", false, "")
	f.Bool("json", false, "")

	require.NoError(t, f.Parse([]string{
		"--stage", "middle",
		"--interval", "10s",
		"--disable-notification",
		"--plain",
	}))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	c := defaultConfig()
	require.NoError(t, WithCLIConfig(ctx)(c))

	assert.Equal(t, models.Middle, c.CLI.Stage)
	assert.Equal(t, 10*time.Second, c.Display.TickInterval)
	assert.False(t, c.Notifications.Enabled)
	assert.True(t, c.CLI.Plain)
	assert.False(t, c.CLI.JSON)

	assert.Equal(t, models.Middle, c.ActiveStage(models.College))
}

func TestCLIConfigBadInterval(t *testing.T) {
	c := defaultConfig()

	err := applyCLIOptions(c, CLIOptions{Interval: "soon"})
	assert.ErrorIs(t, err, errInvalidCLIInterval)
}

func TestActiveStage(t *testing.T) {
	c := defaultConfig()

	assert.Equal(t, models.College, c.ActiveStage(models.College))
	assert.Equal(t, models.High, c.ActiveStage(""))
	assert.Equal(t, models.High, c.ActiveStage("nursery"))
}
