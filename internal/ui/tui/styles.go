package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Accent  lipgloss.Color
	Green   lipgloss.Color
	Yellow  lipgloss.Color
	Red     lipgloss.Color
	Border  lipgloss.Color
}

// Catppuccin Mocha and Latte.
var (
	darkPalette = palette{
		Base:    lipgloss.Color("#1e1e2e"),
		Surface: lipgloss.Color("#313244"),
		Text:    lipgloss.Color("#cdd6f4"),
		Subtext: lipgloss.Color("#a6adc8"),
		Accent:  lipgloss.Color("#74c7ec"),
		Green:   lipgloss.Color("#a6e3a1"),
		Yellow:  lipgloss.Color("#f9e2af"),
		Red:     lipgloss.Color("#f38ba8"),
		Border:  lipgloss.Color("#45475a"),
	}
	lightPalette = palette{
		Base:    lipgloss.Color("#eff1f5"),
		Surface: lipgloss.Color("#ccd0da"),
		Text:    lipgloss.Color("#4c4f69"),
		Subtext: lipgloss.Color("#6c6f85"),
		Accent:  lipgloss.Color("#1e66f5"),
		Green:   lipgloss.Color("#40a02b"),
		Yellow:  lipgloss.Color("#df8e1d"),
		Red:     lipgloss.Color("#d20f39"),
		Border:  lipgloss.Color("#9ca0b0"),
	}
)

// Styles holds every lipgloss style the terminal UI renders with.
type Styles struct {
	App      lipgloss.Style
	Pane     lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Clock    lipgloss.Style
	Earnings lipgloss.Style
	Value    lipgloss.Style
	Hint     lipgloss.Style
	Key      lipgloss.Style
	Danger   lipgloss.Style
}

// StylesFor returns the dark or light style set.
func StylesFor(dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return Styles{
		App: lipgloss.NewStyle().
			Background(p.Base).
			Foreground(p.Text).
			Padding(1, 2),
		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Foreground(p.Text).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(p.Subtext),
		Clock:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Earnings: lipgloss.NewStyle().Foreground(p.Green).Bold(true),
		Value:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(p.Yellow),
		Key:      lipgloss.NewStyle().Foreground(p.Accent),
		Danger:   lipgloss.NewStyle().Foreground(p.Red),
	}
}
