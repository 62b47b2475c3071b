package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/schoolday/internal/models"
)

const (
	keyStage                = "stage"
	keyDisplayMode          = "display.mode"
	keyTickInterval         = "display.tick_interval"
	keyTwentyFourHour       = "display.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keyDayEndCmd            = "settings.day_end_cmd"
	keyDebug                = "settings.debug"
	keyStorageDriver        = "storage.driver"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does not
// exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values already answered
// in the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyStage, string(models.High))
	v.SetDefault(keyDisplayMode, string(ModeProgress))
	v.SetDefault(keyTickInterval, "1s")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, true)
	v.SetDefault(keyDayEndCmd, "")
	v.SetDefault(keyDebug, false)
	v.SetDefault(keyStorageDriver, "bolt")

	if c.Stage != "" {
		v.Set(keyStage, string(c.Stage))
	}

	if c.Display.Mode != "" {
		v.Set(keyDisplayMode, string(c.Display.Mode))
	}

	if c.Display.TwentyFourHour {
		v.Set(keyTwentyFourHour, true)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	// a bare number in the config file is treated as seconds
	if c.Display.TickInterval > 0 && c.Display.TickInterval < time.Second {
		c.Display.TickInterval *= time.Second
	}

	return nil
}
