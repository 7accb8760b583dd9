// Package tui is the terminal front end for the salary stopwatch.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salarywatch/internal/core/earnings"
	"salarywatch/internal/core/model"
	"salarywatch/internal/core/salary"
	"salarywatch/internal/core/stopwatch"
	"salarywatch/internal/lib/sl"
	"salarywatch/internal/ui/preferences"
)

const title = "Live Salary Stopwatch"

// tickMsg asks for a redisplay. Ticks from an earlier run carry a stale
// generation and are dropped.
type tickMsg struct {
	generation int
}

// Model is the bubbletea model for the terminal UI.
type Model struct {
	tracker    *salary.Tracker
	prefs      *preferences.Manager
	formatter  earnings.Formatter
	schedule   model.WorkSchedule
	interval   time.Duration
	log        *slog.Logger
	input      textinput.Model
	styles     Styles
	generation int
	status     string
	width      int
	quitting   bool
}

// New creates the terminal model. The wage input starts focused.
func New(tracker *salary.Tracker, prefs *preferences.Manager, formatter earnings.Formatter, interval time.Duration, log *slog.Logger) Model {
	if interval <= 0 {
		interval = time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	ti := textinput.New()
	ti.Placeholder = "Enter your hourly wage"
	ti.Prompt = "$/hr › "
	ti.CharLimit = 32
	ti.Focus()

	dark := true
	if prefs != nil {
		dark = prefs.DarkMode()
	}

	return Model{
		tracker:   tracker,
		prefs:     prefs,
		formatter: formatter,
		schedule:  model.DefaultWorkSchedule(),
		interval:  interval,
		log:       log,
		input:     ti,
		styles:    StylesFor(dark),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if msg.generation != m.generation || !m.tracker.Stopwatch().Running() {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateControls(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.tracker.SetWage(m.input.Value()) {
			m.status = fmt.Sprintf("wage set to %s/hr", m.formatter.Format(m.tracker.HourlyWage()))
			m.input.Blur()
		}
		return m, nil
	case "esc", "tab":
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateControls(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.quit()
	case "w", "tab":
		m.input.SetValue("")
		return m, m.input.Focus()
	case " ", "s", "enter":
		if !m.tracker.Toggle() {
			m.status = salary.WageHint
			return m, nil
		}
		m.status = ""
		m.generation++
		if m.tracker.Stopwatch().Running() {
			return m, m.tick()
		}
		return m, nil
	case "r":
		m.tracker.Reset()
		m.generation++
		m.status = ""
		return m, nil
	case "d":
		if m.prefs == nil {
			return m, nil
		}
		dark, err := m.prefs.ToggleDarkMode()
		if err != nil {
			m.log.Warn("save appearance preference", sl.Err(err))
		}
		m.styles = StylesFor(dark)
		return m, nil
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.generation++
	return m, tea.Quit
}

func (m Model) tick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	snapshot := m.tracker.Snapshot()

	var wage strings.Builder
	wage.WriteString(s.Muted.Render("Hourly Wage ($/hr)") + "\n")
	wage.WriteString(m.input.View() + "\n")
	if snapshot.WageSet() {
		wage.WriteString(s.Muted.Render("Current wage: ") + s.Value.Render(m.formatter.Format(snapshot.HourlyWage)+"/hr"))
	}

	var timer strings.Builder
	timer.WriteString(s.Title.Render("Live Salary Tracker") + "\n\n")
	timer.WriteString(s.Clock.Render(earnings.FormatTime(snapshot.ElapsedSeconds)) + "\n\n")
	timer.WriteString(m.controlsView(snapshot))
	if !snapshot.WageSet() {
		timer.WriteString("\n\n" + s.Hint.Render(salary.WageHint))
	}

	var earned strings.Builder
	earned.WriteString(s.Title.Render("Current Earnings & Projections") + "\n\n")
	earned.WriteString(s.Earnings.Render(m.formatter.Format(snapshot.Earnings)) + "\n\n")
	earned.WriteString(line(s, "Elapsed time:", earnings.FormatTime(snapshot.ElapsedSeconds)) + "\n")
	earned.WriteString(line(s, "Hourly wage:", m.formatter.Format(snapshot.HourlyWage)))
	if snapshot.WageSet() {
		earned.WriteString("\n\n" + s.Title.Render("Earnings Projections") + "\n")
		earned.WriteString(ProjectionLines(s, m.formatter, m.schedule, snapshot.Projections))
	}

	sections := []string{
		s.Title.Render("$ " + title),
		s.Pane.Render(wage.String()),
		s.Pane.Render(timer.String()),
		s.Pane.Render(earned.String()),
	}
	if m.status != "" {
		sections = append(sections, s.Muted.Render(m.status))
	}
	sections = append(sections, m.helpView())
	return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) controlsView(snapshot salary.Snapshot) string {
	s := m.styles
	toggle := snapshot.StartLabel()
	if snapshot.State == stopwatch.StateRunning {
		toggle = "Pause"
	}
	toggleStyle := s.Key
	if !snapshot.CanStart() && snapshot.State != stopwatch.StateRunning {
		toggleStyle = s.Muted
	}
	return toggleStyle.Render("[space] "+toggle) + "  " + s.Danger.Render("[r] Reset")
}

func (m Model) helpView() string {
	s := m.styles
	if m.input.Focused() {
		return s.Muted.Render("enter set wage • tab controls • ctrl+c quit")
	}
	return s.Muted.Render("w wage • space start/pause • r reset • d dark/light • q quit")
}

func line(s Styles, label, value string) string {
	return s.Muted.Render(fmt.Sprintf("%-20s", label)) + s.Value.Render(value)
}

// ProjectionLines renders the daily, weekly and monthly projections.
func ProjectionLines(s Styles, formatter earnings.Formatter, schedule model.WorkSchedule, projections earnings.Projections) string {
	rows := []string{
		line(s, fmt.Sprintf("Daily (%g hours):", schedule.HoursPerDay), formatter.Format(projections.Daily)),
		line(s, fmt.Sprintf("Weekly (%g hours):", schedule.HoursPerWeek()), formatter.Format(projections.Weekly)),
		line(s, fmt.Sprintf("Monthly (%d hours):", schedule.HoursPerMonth()), formatter.Format(projections.Monthly)),
	}
	return strings.Join(rows, "\n")
}

// Run starts the terminal UI and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
