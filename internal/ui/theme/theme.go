// Package theme defines the ManaQuiz palette and the shared styles the
// screens build on.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: calm study tones with clear accents.
var (
	Primary   = lipgloss.Color("#6366F1") // indigo
	Secondary = lipgloss.Color("#06B6D4") // cyan
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#22C55E") // green
	Error     = lipgloss.Color("#EF4444") // red
	Text      = lipgloss.Color("#F8FAFC") // near white
	TextDim   = lipgloss.Color("#94A3B8") // slate
	BgDark    = lipgloss.Color("#0F172A") // deep navy
	BgCard    = lipgloss.Color("#1E293B") // dark slate
	Border    = lipgloss.Color("#334155") // slate
)

// Answer review marks.
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Card returns the bordered surface the header and footer chrome sit
// on.
func Card(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
}
