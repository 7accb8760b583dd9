// Package calculator renders the wage form, the stopwatch and the earnings in a fyne window.
package calculator

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"salarywatch/internal/core/earnings"
	"salarywatch/internal/core/model"
	"salarywatch/internal/core/salary"
	"salarywatch/internal/core/stopwatch"
	"salarywatch/internal/lib/sl"
	"salarywatch/internal/ui/appearance"
	"salarywatch/internal/ui/preferences"
)

const title = "Live Salary Stopwatch"

// Window handles the calculator UI.
type Window struct {
	window    fyne.Window
	tracker   *salary.Tracker
	prefs     *preferences.Manager
	formatter earnings.Formatter
	log       *slog.Logger
	onChange  func()

	wageEntry   *widget.Entry
	setWage     *widget.Button
	currentWage *widget.Label
	clock       *canvas.Text
	toggle      *widget.Button
	reset       *widget.Button
	hint        *widget.Label
	earned      *canvas.Text
	elapsed     *widget.Label
	wage        *widget.Label
	daily       *widget.Label
	weekly      *widget.Label
	monthly     *widget.Label
	projections *fyne.Container
	themeButton *widget.Button
}

// New creates the calculator window.
func New(app fyne.App, tracker *salary.Tracker, prefs *preferences.Manager, formatter earnings.Formatter, log *slog.Logger) *Window {
	if log == nil {
		log = slog.Default()
	}
	window := app.NewWindow(title)
	schedule := model.DefaultWorkSchedule()

	calc := &Window{
		window:      window,
		tracker:     tracker,
		prefs:       prefs,
		formatter:   formatter,
		log:         log,
		wageEntry:   widget.NewEntry(),
		currentWage: widget.NewLabel(""),
		clock:       canvas.NewText("00:00:00", theme.Color(theme.ColorNameForeground)),
		hint:        widget.NewLabel(salary.WageHint),
		earned:      canvas.NewText("", theme.Color(appearance.ColorNameEarnings)),
		elapsed:     widget.NewLabel(""),
		wage:        widget.NewLabel(""),
		daily:       widget.NewLabel(""),
		weekly:      widget.NewLabel(""),
		monthly:     widget.NewLabel(""),
	}

	calc.wageEntry.SetPlaceHolder("Enter your hourly wage")
	calc.wageEntry.OnChanged = calc.handleWageInput
	calc.wageEntry.OnSubmitted = func(string) { calc.handleSetWage() }
	calc.setWage = widget.NewButton("Set Wage", calc.handleSetWage)
	calc.setWage.Importance = widget.HighImportance
	calc.setWage.Disable()

	calc.clock.TextSize = 48
	calc.clock.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	calc.clock.Alignment = fyne.TextAlignCenter
	calc.earned.TextSize = 40
	calc.earned.TextStyle = fyne.TextStyle{Bold: true}
	calc.earned.Alignment = fyne.TextAlignCenter
	calc.elapsed.TextStyle = fyne.TextStyle{Monospace: true}
	calc.hint.Wrapping = fyne.TextWrapWord

	calc.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), calc.handleToggle)
	calc.reset = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), calc.handleReset)
	calc.reset.Importance = widget.DangerImportance
	calc.themeButton = widget.NewButton("", calc.handleToggleTheme)

	wageForm := container.NewBorder(nil, nil, nil, calc.setWage, calc.wageEntry)
	wageCard := widget.NewCard("", "Hourly Wage ($/hr)", container.NewVBox(wageForm, calc.currentWage))

	controls := container.NewHBox(layout.NewSpacer(), calc.toggle, calc.reset, layout.NewSpacer())
	trackerCard := widget.NewCard("Live Salary Tracker", "", container.NewVBox(calc.clock, controls, calc.hint))

	calc.projections = container.NewVBox(
		widget.NewLabelWithStyle("Earnings Projections", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		row("Daily (8 hours):", calc.daily),
		row("Weekly (40 hours):", calc.weekly),
		row(fmt.Sprintf("Monthly (%d hours):", schedule.HoursPerMonth()), calc.monthly),
	)
	earningsCard := widget.NewCard("Current Earnings & Projections", "", container.NewVBox(
		calc.earned,
		row("Elapsed time:", calc.elapsed),
		row("Hourly wage:", calc.wage),
		widget.NewSeparator(),
		calc.projections,
	))

	header := container.NewBorder(nil, nil, nil, calc.themeButton,
		widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	footer := widget.NewLabelWithStyle("Your earnings are calculated in real-time based on elapsed time",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	content := container.NewVBox(header, wageCard, trackerCard, earningsCard, footer)
	window.SetContent(container.NewVScroll(content))
	window.Resize(fyne.NewSize(520, 760))

	calc.Refresh()
	return calc
}

func row(label string, value *widget.Label) fyne.CanvasObject {
	value.TextStyle.Bold = true
	return container.NewBorder(nil, nil, widget.NewLabel(label), value)
}

// Window returns the underlying fyne window.
func (calc *Window) Window() fyne.Window {
	return calc.window
}

// Show displays the calculator window.
func (calc *Window) Show() {
	calc.window.Show()
	calc.window.RequestFocus()
}

// SetOnChange registers a callback run after every user action.
func (calc *Window) SetOnChange(callback func()) {
	calc.onChange = callback
}

// Refresh redraws every value from the tracker. Call it on the fyne thread.
func (calc *Window) Refresh() {
	snapshot := calc.tracker.Snapshot()

	if snapshot.WageSet() {
		calc.currentWage.SetText(fmt.Sprintf("Current wage: %s/hr", calc.formatter.Format(snapshot.HourlyWage)))
		calc.currentWage.Show()
		calc.hint.Hide()
		calc.projections.Show()
	} else {
		calc.currentWage.Hide()
		calc.hint.Show()
		calc.projections.Hide()
	}

	calc.clock.Text = earnings.FormatTime(snapshot.ElapsedSeconds)
	calc.clock.Color = theme.Color(theme.ColorNameForeground)
	calc.clock.Refresh()
	calc.earned.Text = calc.formatter.Format(snapshot.Earnings)
	calc.earned.Color = theme.Color(appearance.ColorNameEarnings)
	calc.earned.Refresh()

	calc.elapsed.SetText(earnings.FormatTime(snapshot.ElapsedSeconds))
	calc.wage.SetText(calc.formatter.Format(snapshot.HourlyWage))
	calc.daily.SetText(calc.formatter.Format(snapshot.Projections.Daily))
	calc.weekly.SetText(calc.formatter.Format(snapshot.Projections.Weekly))
	calc.monthly.SetText(calc.formatter.Format(snapshot.Projections.Monthly))

	if snapshot.State == stopwatch.StateRunning {
		calc.toggle.SetText("Pause")
		calc.toggle.SetIcon(theme.MediaPauseIcon())
		calc.toggle.Importance = widget.MediumImportance
		calc.toggle.Enable()
	} else {
		calc.toggle.SetText(snapshot.StartLabel())
		calc.toggle.SetIcon(theme.MediaPlayIcon())
		calc.toggle.Importance = widget.HighImportance
		if snapshot.CanStart() {
			calc.toggle.Enable()
		} else {
			calc.toggle.Disable()
		}
	}
	calc.toggle.Refresh()

	if calc.prefs != nil && calc.prefs.DarkMode() {
		calc.themeButton.SetText("Light")
		calc.themeButton.SetIcon(theme.VisibilityIcon())
	} else {
		calc.themeButton.SetText("Dark")
		calc.themeButton.SetIcon(theme.VisibilityOffIcon())
	}
}

func (calc *Window) handleWageInput(text string) {
	if !earnings.IsDecimal(text) {
		calc.setWage.Disable()
		return
	}
	calc.setWage.Enable()
}

func (calc *Window) handleSetWage() {
	if !calc.tracker.SetWage(calc.wageEntry.Text) {
		calc.log.Debug("wage input ignored", slog.String("input", calc.wageEntry.Text))
		return
	}
	calc.log.Info("wage set", slog.Float64("hourly_wage", calc.tracker.HourlyWage()))
	calc.changed()
}

func (calc *Window) handleToggle() {
	calc.tracker.Toggle()
	calc.changed()
}

func (calc *Window) handleReset() {
	calc.tracker.Reset()
	calc.changed()
}

func (calc *Window) handleToggleTheme() {
	if calc.prefs == nil {
		return
	}
	if _, err := calc.prefs.ToggleDarkMode(); err != nil {
		calc.log.Error("save appearance preference", sl.Err(err))
	}
	calc.changed()
}

func (calc *Window) changed() {
	calc.Refresh()
	if calc.onChange != nil {
		calc.onChange()
	}
}
