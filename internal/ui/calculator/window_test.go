package calculator

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salarywatch/internal/core/earnings"
	"salarywatch/internal/core/model"
	"salarywatch/internal/core/salary"
	"salarywatch/internal/core/stopwatch"
	"salarywatch/internal/ui/preferences"
)

type fixedClock struct {
	now time.Time
}

func (clock *fixedClock) Now() time.Time { return clock.now }

func newTestWindow(t *testing.T) (*Window, *fixedClock) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	clock := &fixedClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	watch := stopwatch.New(model.StopwatchConfig{RefreshInterval: time.Hour})
	watch.SetClock(clock)
	t.Cleanup(watch.Stop)

	prefs, err := preferences.NewManager(nil)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	calc := New(app, salary.NewTracker(watch), prefs, earnings.DefaultFormatter(), logger)
	return calc, clock
}

func TestInitialStateRequiresWage(t *testing.T) {
	calc, _ := newTestWindow(t)

	assert.True(t, calc.setWage.Disabled())
	assert.True(t, calc.toggle.Disabled())
	assert.True(t, calc.hint.Visible())
	assert.False(t, calc.projections.Visible())
	assert.Equal(t, "00:00:00", calc.clock.Text)
	assert.Equal(t, "$0.00", calc.earned.Text)
}

func TestSetWageEnablesStart(t *testing.T) {
	calc, _ := newTestWindow(t)
	changes := 0
	calc.SetOnChange(func() { changes++ })

	test.Type(calc.wageEntry, "20")
	require.False(t, calc.setWage.Disabled())
	test.Tap(calc.setWage)

	assert.Equal(t, 1, changes)
	assert.Equal(t, "Current wage: $20.00/hr", calc.currentWage.Text)
	assert.False(t, calc.toggle.Disabled())
	assert.False(t, calc.hint.Visible())
	assert.True(t, calc.projections.Visible())
	assert.Equal(t, "$160.00", calc.daily.Text)
	assert.Equal(t, "$800.00", calc.weekly.Text)
	assert.Equal(t, "$3,464.00", calc.monthly.Text)
}

func TestNonPositiveWageIsIgnored(t *testing.T) {
	calc, _ := newTestWindow(t)

	test.Type(calc.wageEntry, "-5")
	test.Tap(calc.setWage)

	assert.Zero(t, calc.tracker.HourlyWage())
	assert.True(t, calc.toggle.Disabled())
}

func TestStartPauseResumeReset(t *testing.T) {
	calc, clock := newTestWindow(t)
	test.Type(calc.wageEntry, "36")
	test.Tap(calc.setWage)

	test.Tap(calc.toggle)
	assert.Equal(t, "Pause", calc.toggle.Text)

	clock.now = clock.now.Add(time.Hour)
	test.Tap(calc.toggle)
	assert.Equal(t, "Resume", calc.toggle.Text)
	assert.Equal(t, "01:00:00", calc.clock.Text)
	assert.Equal(t, "$36.00", calc.earned.Text)

	test.Tap(calc.reset)
	assert.Equal(t, "Start", calc.toggle.Text)
	assert.Equal(t, "00:00:00", calc.clock.Text)
}

func TestThemeButtonTogglesPreference(t *testing.T) {
	calc, _ := newTestWindow(t)
	require.True(t, calc.prefs.DarkMode())
	assert.Equal(t, "Light", calc.themeButton.Text)

	test.Tap(calc.themeButton)

	assert.False(t, calc.prefs.DarkMode())
	assert.Equal(t, "Dark", calc.themeButton.Text)
	assert.Zero(t, calc.tracker.HourlyWage())
}

func TestSetWageDisabledForNonDecimalInput(t *testing.T) {
	for _, input := range []string{"0x10p0", "1_000", "abc"} {
		t.Run(input, func(t *testing.T) {
			calc, _ := newTestWindow(t)

			test.Type(calc.wageEntry, input)
			assert.True(t, calc.setWage.Disabled())

			calc.handleSetWage()
			assert.Zero(t, calc.tracker.HourlyWage())
		})
	}
}
