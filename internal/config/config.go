// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/text/language"

	"salarywatch/internal/storage"
)

// AppName names the per-user config directory.
const AppName = "SalaryWatch"

// Config holds settings that are not user preferences.
type Config struct {
	ConfigDir       string        `env:"SALARYWATCH_CONFIG_DIR" env-description:"directory holding settings.yaml"`
	RefreshInterval time.Duration `env:"SALARYWATCH_REFRESH_INTERVAL" env-default:"1s" env-description:"display refresh interval"`
	Locale          string        `env:"SALARYWATCH_LOCALE" env-default:"en-US" env-description:"BCP 47 tag for number formatting"`
	CurrencySymbol  string        `env:"SALARYWATCH_CURRENCY_SYMBOL" env-default:"$" env-description:"currency symbol"`
	LogLevel        string        `env:"SALARYWATCH_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env config: %w", err)
	}
	if cfg.ConfigDir == "" {
		dir, err := storage.DefaultDir(AppName)
		if err != nil {
			return cfg, err
		}
		cfg.ConfigDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values cleanenv cannot check on its own.
func (c Config) Validate() error {
	if c.RefreshInterval <= 0 {
		return errors.New("refresh interval must be positive")
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("parse locale %q: %w", c.Locale, err)
	}
	return nil
}

// Language returns the parsed locale.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// Usage describes the supported environment variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}

func (c Config) String() string {
	return fmt.Sprintf(
		"ConfigDir: %s\n"+
			"RefreshInterval: %s\n"+
			"Locale: %s\n"+
			"CurrencySymbol: %s\n"+
			"LogLevel: %s\n",
		c.ConfigDir,
		c.RefreshInterval,
		c.Locale,
		c.CurrencySymbol,
		c.LogLevel,
	)
}
