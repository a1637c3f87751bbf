package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, legible on dark terminals
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// StateFocused, StateConfused, and StateFrustrated color the live cognitive
// state badge and the stats history.
var (
	StateFocused = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StateConfused = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StateFrustrated = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// ForState returns the badge style for a cognitive state label.
func ForState(state string) lipgloss.Style {
	switch state {
	case "frustrated":
		return StateFrustrated
	case "confused":
		return StateConfused
	default:
		return StateFocused
	}
}
