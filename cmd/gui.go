package main

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"salarywatch/internal/config"
	"salarywatch/internal/core/earnings"
	"salarywatch/internal/core/stopwatch"
	"salarywatch/internal/lib/sl"
	"salarywatch/internal/platform"
	"salarywatch/internal/ui/appearance"
	"salarywatch/internal/ui/calculator"
	"salarywatch/internal/ui/preferences"
	"salarywatch/internal/ui/tray"
)

func runGUI(cfg config.Config, log *slog.Logger) error {
	guard, err := platform.AcquireSingleInstance(config.AppName)
	if err != nil {
		log.Warn("single instance", sl.Err(err))
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	s := openSession(cfg, log)
	defer s.close()

	fyneApp := app.NewWithID("com.salarywatch.app")
	fyneApp.SetIcon(theme.AccountIcon())
	fyneApp.Settings().SetTheme(appearance.For(s.prefs.DarkMode()))

	calc := calculator.New(fyneApp, s.tracker, s.prefs, s.formatter, log)
	s.prefs.OnChange(func(settings preferences.Settings) {
		log.Debug("appearance changed", slog.Bool("dark_mode", settings.DarkMode))
		fyneApp.Settings().SetTheme(appearance.For(settings.DarkMode))
		calc.Refresh()
	})

	var trayManager *tray.Manager
	updateTray := func() {
		if trayManager != nil {
			trayManager.Update(trayStatus(s))
		}
	}
	calc.SetOnChange(updateTray)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		calc.Window().SetCloseIntercept(func() {
			calc.Window().Hide()
		})
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: calc.Show,
			OnToggle: func() {
				s.tracker.Toggle()
				calc.Refresh()
				updateTray()
			},
			OnReset: func() {
				s.tracker.Reset()
				calc.Refresh()
				updateTray()
			},
			OnToggleTheme: func() {
				if _, err := s.prefs.ToggleDarkMode(); err != nil {
					log.Error("save appearance preference", sl.Err(err))
				}
			},
			OnQuit: func() {
				s.watch.Stop()
				fyneApp.Quit()
			},
		})
		updateTray()
	} else {
		log.Info("system tray unsupported on this platform")
	}

	events := s.watch.Subscribe(8)
	go func() {
		for event := range events {
			if event.Type == stopwatch.EventTick || event.Type == stopwatch.EventStateChange {
				fyne.Do(func() {
					calc.Refresh()
					updateTray()
				})
			}
		}
	}()

	log.Info("starting", slog.String("config_dir", cfg.ConfigDir), slog.Duration("refresh", cfg.RefreshInterval))
	calc.Show()
	fyneApp.Run()
	return nil
}

func trayStatus(s *session) tray.Status {
	snapshot := s.tracker.Snapshot()
	return tray.Status{
		Earned:   s.formatter.Format(snapshot.Earnings),
		Elapsed:  earnings.FormatTime(snapshot.ElapsedSeconds),
		Running:  snapshot.State == stopwatch.StateRunning,
		CanStart: snapshot.CanStart(),
		Resume:   snapshot.ElapsedSeconds > 0,
	}
}
