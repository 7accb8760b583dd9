package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SALARYWATCH_CONFIG_DIR", dir)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, time.Second, cfg.RefreshInterval)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, language.AmericanEnglish, cfg.Language())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SALARYWATCH_CONFIG_DIR", t.TempDir())
	t.Setenv("SALARYWATCH_REFRESH_INTERVAL", "250ms")
	t.Setenv("SALARYWATCH_LOCALE", "de-DE")
	t.Setenv("SALARYWATCH_CURRENCY_SYMBOL", "€")
	t.Setenv("SALARYWATCH_LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.RefreshInterval)
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, "€", cfg.CurrencySymbol)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"zero interval":  {"SALARYWATCH_REFRESH_INTERVAL": "0s"},
		"bad interval":   {"SALARYWATCH_REFRESH_INTERVAL": "soon"},
		"bad locale tag": {"SALARYWATCH_LOCALE": "not a locale!"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("SALARYWATCH_CONFIG_DIR", t.TempDir())
			for key, value := range env {
				t.Setenv(key, value)
			}

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestUsageListsVariables(t *testing.T) {
	usage := Usage()

	assert.Contains(t, usage, "SALARYWATCH_REFRESH_INTERVAL")
	assert.Contains(t, usage, "SALARYWATCH_LOCALE")
}
