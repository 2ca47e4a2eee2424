package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorAccent = lipgloss.Color("39")
	colorSubtle = lipgloss.Color("241")
	colorText   = lipgloss.Color("252")
	colorFocus  = lipgloss.Color("212")
	colorBorder = lipgloss.Color("238")
)

//nolint:gochecknoglobals // Shared lipgloss styles, read-only after init.
var (
	// HeaderStyle renders section titles.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// SubtleStyle renders help and hint text.
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// LabelStyle renders the pager status label.
	LabelStyle = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)

	// ButtonStyle renders an idle pager button.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// FocusedButtonStyle renders the button that enter activates.
	FocusedButtonStyle = ButtonStyle.
				BorderForeground(colorFocus).
				Foreground(colorFocus).
				Bold(true)

	// TableHeaderStyle renders the table column titles.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorBorder).
				BorderBottom(true)

	// TableSelectedStyle renders the highlighted table row.
	TableSelectedStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	// ActiveDotStyle and InactiveDotStyle render the page dots.
	ActiveDotStyle   = lipgloss.NewStyle().Foreground(colorFocus)
	InactiveDotStyle = lipgloss.NewStyle().Foreground(colorSubtle)
)
