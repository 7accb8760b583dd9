package preferences

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	settings Settings
	loadErr  error
	saveErr  error
	saved    []Settings
}

func (store *memoryStore) Load() (Settings, error) {
	return store.settings, store.loadErr
}

func (store *memoryStore) Save(settings Settings) error {
	store.saved = append(store.saved, settings)
	return store.saveErr
}

func TestDefaultSettingsPreferDark(t *testing.T) {
	assert.True(t, DefaultSettings().DarkMode)
}

func TestNewManagerLoadsOnce(t *testing.T) {
	store := &memoryStore{settings: Settings{DarkMode: false}}

	manager, err := NewManager(store)

	require.NoError(t, err)
	assert.False(t, manager.DarkMode())
	assert.Empty(t, store.saved)
}

func TestNewManagerKeepsDefaultsOnLoadError(t *testing.T) {
	store := &memoryStore{loadErr: errors.New("broken")}

	manager, err := NewManager(store)

	require.Error(t, err)
	require.NotNil(t, manager)
	assert.True(t, manager.DarkMode())
}

func TestToggleWritesEveryChange(t *testing.T) {
	store := &memoryStore{settings: DefaultSettings()}
	manager, err := NewManager(store)
	require.NoError(t, err)

	var seen []bool
	manager.OnChange(func(settings Settings) {
		seen = append(seen, settings.DarkMode)
	})

	dark, err := manager.ToggleDarkMode()
	require.NoError(t, err)
	assert.False(t, dark)

	dark, err = manager.ToggleDarkMode()
	require.NoError(t, err)
	assert.True(t, dark)

	assert.Equal(t, []Settings{{DarkMode: false}, {DarkMode: true}}, store.saved)
	assert.Equal(t, []bool{false, true}, seen)
}

func TestSaveErrorIsReturned(t *testing.T) {
	store := &memoryStore{settings: DefaultSettings(), saveErr: errors.New("disk full")}
	manager, err := NewManager(store)
	require.NoError(t, err)

	require.Error(t, manager.SetDarkMode(false))
	assert.False(t, manager.DarkMode())
}

func TestClosedManagerRejectsUpdates(t *testing.T) {
	manager, err := NewManager(nil)
	require.NoError(t, err)

	manager.Close()

	assert.ErrorIs(t, manager.SetDarkMode(false), ErrClosed)
	assert.True(t, manager.DarkMode())
}
