package display

import (
	"charm.land/lipgloss/v2"
)

// Color palette — kid-friendly, bright but not garish
var (
	primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	accent  = lipgloss.Color("#F97316") // Orange
	success = lipgloss.Color("#22C55E") // Green
	errCol  = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(success)

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errCol)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)

	stemStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(text)

	passageStyle = lipgloss.NewStyle().
			Foreground(text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(76)
)
