package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Rafi-Luffy/ManaQuiz/internal/exam"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/components"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.confirmSubmit {
		return s.renderSubmitConfirm(width)
	}

	q := s.exam.CurrentQuestion()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No questions in this run.")
	}

	var b strings.Builder

	// Info line: position on the left, answered count and timer on the
	// right.
	total := len(s.exam.Questions)
	pos := s.exam.State.CurrentQuestionIndex + 1

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", pos, total))

	right := fmt.Sprintf("Answered %d/%d", len(s.exam.State.Answers), total)
	if s.exam.Config.Mode == exam.ModeTimed {
		secs := s.exam.State.TimeRemaining
		right += fmt.Sprintf("  %s %d:%02d",
			lipgloss.NewStyle().Foreground(theme.Accent).Render("T"),
			secs/60, secs%60)
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	// Progress bar across the run.
	bar := components.NewProgressBar("", float64(pos)/float64(total), false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question card with options.
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.mc.View()))
	b.WriteString("\n")

	hint := "A-D or Enter records, arrows move"
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))

	return b.String()
}

func (s *SessionScreen) renderSubmitConfirm(width int) string {
	answered := len(s.exam.State.Answers)
	total := len(s.exam.Questions)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Submit this quiz?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d questions answered", answered, total)))
	if answered < total {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Unanswered questions score zero."))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Y to submit, N to keep going"))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
