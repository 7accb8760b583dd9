package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"salarywatch/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DarkMode string `yaml:"dark_mode"`
}

// YAMLStore persists preferences to a YAML file.
type YAMLStore struct {
	path string
}

// NewYAMLStore creates a store backed by settings.yaml inside dir.
func NewYAMLStore(dir string) *YAMLStore {
	return &YAMLStore{path: filepath.Join(dir, settingsFileName)}
}

// DefaultDir returns the per-user config directory for appName.
func DefaultDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

// Path returns the settings file location.
func (store *YAMLStore) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func (store *YAMLStore) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *YAMLStore) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		DarkMode: strconv.FormatBool(settings.DarkMode),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// An empty key keeps the default; any other value is dark only when "true".
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.DarkMode != "" {
		settings.DarkMode = fileData.DarkMode == "true"
	}
}
