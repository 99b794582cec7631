// Package summary shows the scored result of a completed exam, newly
// unlocked achievements, and study recommendations.
package summary

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Rafi-Luffy/ManaQuiz/internal/exam"
	"github.com/Rafi-Luffy/ManaQuiz/internal/progress"
	"github.com/Rafi-Luffy/ManaQuiz/internal/report"
	"github.com/Rafi-Luffy/ManaQuiz/internal/router"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screen"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/layout"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/theme"
)

// SummaryScreen displays one exam result.
type SummaryScreen struct {
	result       exam.Result
	timeExpired  bool
	achievements []progress.Achievement
	recs         []string
	reviewing    bool
	reviewIdx    int
	notice       string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result exam.Result, timeExpired bool, achievements []progress.Achievement, recs []string) *SummaryScreen {
	return &SummaryScreen{
		result:       result,
		timeExpired:  timeExpired,
		achievements: achievements,
		recs:         recs,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.reviewing {
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "R", Description: "Back to score"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "E", Description: "Export CSV"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "r":
		s.reviewing = !s.reviewing
		s.reviewIdx = 0
	case "e":
		if !s.reviewing {
			s.notice = s.exportCSV()
		}
	case "left", "h":
		if s.reviewing && s.reviewIdx > 0 {
			s.reviewIdx--
		}
	case "right", "l":
		if s.reviewing && s.reviewIdx < len(s.result.Questions)-1 {
			s.reviewIdx++
		}
	case "enter", "esc":
		if !s.reviewing {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.reviewing = false
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.reviewing {
		return s.renderReview(width)
	}
	return s.renderScore(width)
}

func (s *SummaryScreen) renderScore(width int) string {
	r := s.result
	var b strings.Builder

	heading := "Quiz complete!"
	if s.timeExpired {
		heading = "Time's up!"
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n")
	if s.timeExpired {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("The quiz was submitted automatically when the clock ran out."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	scoreStyle := theme.Correct
	if r.Percentage < 70 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		scoreStyle.Render(fmt.Sprintf("%d%%", r.Percentage))))
	b.WriteString("\n\n")

	mins := r.TimeTaken / 60
	secs := r.TimeTaken % 60
	statsLine := fmt.Sprintf("%s    Correct: %d/%d    Time: %d:%02d    Difficulty: %s",
		r.CourseName, r.Score, r.TotalQuestions, mins, secs, r.Difficulty)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	if len(s.achievements) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements unlocked")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, a := range s.achievements {
			line := fmt.Sprintf("  ★ %s: %s", a.Title, a.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	if len(s.recs) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Suggestions")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, rec := range s.recs {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render("  "+rec)))
			b.WriteString("\n")
		}
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(s.notice))
		b.WriteString("\n")
	}

	return b.String()
}

// exportCSV writes the result to a CSV file in the working directory
// and returns a notice for the score view.
func (s *SummaryScreen) exportCSV() string {
	name := fmt.Sprintf("manaquiz-result-%s.csv", s.result.CompletedAt.Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		return "Export failed: " + err.Error()
	}
	defer f.Close()
	if err := report.Write(f, s.result); err != nil {
		return "Export failed: " + err.Error()
	}
	return "Saved " + name
}

func (s *SummaryScreen) renderReview(width int) string {
	r := s.result
	if len(r.Questions) == 0 {
		return ""
	}
	q := r.Questions[s.reviewIdx]
	selected := r.Answers[q.ID]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.reviewIdx+1, len(r.Questions))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	labels := []string{"A", "B", "C", "D"}
	for i, opt := range q.Options {
		line := fmt.Sprintf("    %s)  %s", labels[i], opt)
		switch {
		case opt == q.CorrectAnswer:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case opt == selected:
			b.WriteString(theme.Incorrect.Render(line + "  ✗ your answer"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}

	if selected == "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(theme.Accent).
			Render("Not answered"))
		b.WriteString("\n")
	}

	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(theme.TextDim).
			Italic(true).
			Render(q.Explanation))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
