package preferences

import (
	"errors"
	"sync"
)

// Settings defines the persisted user preferences.
type Settings struct {
	DarkMode bool
}

// DefaultSettings returns the settings used when nothing was saved yet.
func DefaultSettings() Settings {
	return Settings{
		DarkMode: true,
	}
}

// Store loads and saves Settings.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

// ErrClosed indicates the manager was already torn down.
var ErrClosed = errors.New("preferences closed")

// Manager holds the current settings and writes every change through Store.
type Manager struct {
	mu       sync.Mutex
	store    Store
	settings Settings
	onChange []func(Settings)
	closed   bool
}

// NewManager reads settings once from store. On a load error the defaults are
// kept and the error is returned alongside a usable manager.
func NewManager(store Store) (*Manager, error) {
	manager := &Manager{
		store:    store,
		settings: DefaultSettings(),
	}
	if store == nil {
		return manager, nil
	}
	loaded, err := store.Load()
	if err != nil {
		return manager, err
	}
	manager.settings = loaded
	return manager, nil
}

// Settings returns the current settings.
func (manager *Manager) Settings() Settings {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.settings
}

// DarkMode reports whether the dark appearance is selected.
func (manager *Manager) DarkMode() bool {
	return manager.Settings().DarkMode
}

// OnChange registers a callback invoked after every update.
func (manager *Manager) OnChange(callback func(Settings)) {
	manager.mu.Lock()
	manager.onChange = append(manager.onChange, callback)
	manager.mu.Unlock()
}

// SetDarkMode updates and persists the appearance preference.
// The in-memory value changes even when saving fails.
func (manager *Manager) SetDarkMode(dark bool) error {
	manager.mu.Lock()
	if manager.closed {
		manager.mu.Unlock()
		return ErrClosed
	}
	manager.settings.DarkMode = dark
	settings := manager.settings
	callbacks := append(([]func(Settings))(nil), manager.onChange...)
	manager.mu.Unlock()

	for _, callback := range callbacks {
		callback(settings)
	}
	if manager.store == nil {
		return nil
	}
	return manager.store.Save(settings)
}

// ToggleDarkMode flips the appearance preference and returns the new value.
func (manager *Manager) ToggleDarkMode() (bool, error) {
	dark := !manager.DarkMode()
	return dark, manager.SetDarkMode(dark)
}

// Close detaches callbacks. Later updates return ErrClosed.
func (manager *Manager) Close() {
	manager.mu.Lock()
	manager.closed = true
	manager.onChange = nil
	manager.mu.Unlock()
}
