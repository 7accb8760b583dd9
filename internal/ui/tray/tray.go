package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const menuTitle = "SalaryWatch"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnToggleTheme func()
	OnQuit        func()
}

// Status is what the tray displays about the tracker.
type Status struct {
	Earned   string
	Elapsed  string
	Running  bool
	CanStart bool
	Resume   bool
}

// Manager handles system tray state. The menu is built once; updates
// relabel its items and reinstall it only when something visible changed.
type Manager struct {
	app        desktop.App
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	callbacks  Callbacks
	status     Status
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Earned: $0.00", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})
	manager.toggleItem.Disabled = true

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show calculator", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItem("Toggle dark mode", func() {
			if manager.callbacks.OnToggleTheme != nil {
				manager.callbacks.OnToggleTheme()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)

	if app != nil {
		app.SetSystemTrayIcon(iconFor(false))
		app.SetSystemTrayMenu(manager.menu)
	}
	return manager
}

// Update applies a new status to the menu and the tray icon.
func (manager *Manager) Update(status Status) {
	previous := manager.status
	manager.status = status

	statusLabel := fmt.Sprintf("Earned: %s (%s)", status.Earned, status.Elapsed)
	toggleLabel, toggleDisabled := "Start", !status.CanStart
	switch {
	case status.Running:
		toggleLabel, toggleDisabled = "Pause", false
	case status.Resume:
		toggleLabel = "Resume"
	}

	dirty := manager.statusItem.Label != statusLabel ||
		manager.toggleItem.Label != toggleLabel ||
		manager.toggleItem.Disabled != toggleDisabled
	manager.statusItem.Label = statusLabel
	manager.toggleItem.Label = toggleLabel
	manager.toggleItem.Disabled = toggleDisabled

	if manager.app == nil {
		return
	}
	if status.Running != previous.Running {
		manager.app.SetSystemTrayIcon(iconFor(status.Running))
	}
	if dirty {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

// Status returns the last applied status.
func (manager *Manager) Status() Status {
	return manager.status
}

func iconFor(running bool) fyne.Resource {
	if running {
		return theme.MediaPlayIcon()
	}
	return theme.MediaPauseIcon()
}
