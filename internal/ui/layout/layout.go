// Package layout renders the frame chrome shared by every screen: the
// header bar, the key-hint footer, and the sizing helpers.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is a single key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Window too small\n\nManaQuiz needs at least %d x %d\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the header bar: app name on the left, the
// current screen title centered, the study streak on the right. A zero
// streak is shown as a nudge rather than a count.
func RenderHeader(title string, streak int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  ManaQuiz")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	streakText := "no streak yet"
	if streak == 1 {
		streakText = "★ 1 day streak"
	} else if streak > 1 {
		streakText = fmt.Sprintf("★ %d day streak", streak)
	}
	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(streakText)

	return theme.Card(width).Render(spread(left, center, right, width-4))
}

// RenderFooter renders the footer with dot-separated key hints.
func RenderFooter(hints []KeyHint, width int) string {
	sep := lipgloss.NewStyle().Foreground(theme.Border).Render(" · ")

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	return theme.Card(width).Render("  " + strings.Join(parts, sep))
}

// RenderFrame stacks header, content, and footer, stretching the
// content region to fill the remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}

// spread lays left, center, and right on one line of innerWidth cells,
// keeping the center segment visually centered where it fits.
func spread(left, center, right string, innerWidth int) string {
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}
