package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application settings loaded from config.yaml.
type Config struct {
	Saving  SavingConfig  `mapstructure:"saving"`
	Logging LoggingConfig `mapstructure:"logging"`
	Window  WindowConfig  `mapstructure:"window"`
}

// SavingConfig controls log persistence behavior.
type SavingConfig struct {
	SaveOnClose     bool `mapstructure:"save_on_close"`
	AutosaveMinutes int  `mapstructure:"autosave_minutes"`
}

// LoggingConfig contains console logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// WindowConfig contains initial window geometry.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("saving.save_on_close", true)
	v.SetDefault("saving.autosave_minutes", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("window.width", 900)
	v.SetDefault("window.height", 640)
}

// Load reads config.yaml from the given directories, falling back to
// defaults when no file is found. A malformed file is an error; a missing
// file is not.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if len(paths) == 0 {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("contract_explorer")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg.Normalize(), nil
}

// Normalize clamps out-of-range values to usable ones.
func (c Config) Normalize() Config {
	if c.Saving.AutosaveMinutes < 1 {
		c.Saving.AutosaveMinutes = 1
	}
	if c.Window.Width < 400 {
		c.Window.Width = 400
	}
	if c.Window.Height < 300 {
		c.Window.Height = 300
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	return c
}
