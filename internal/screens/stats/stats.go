// Package stats renders the progress dashboard: overall figures,
// per-category breakdown, achievements, and recommendations.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Rafi-Luffy/ManaQuiz/internal/progress"
	"github.com/Rafi-Luffy/ManaQuiz/internal/router"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screen"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/components"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/layout"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/theme"
)

type tab int

const (
	tabOverview tab = iota
	tabCategories
	tabAchievements
)

var tabNames = []string{"Overview", "Categories", "Achievements"}

// StatsScreen implements screen.Screen for the progress dashboard.
type StatsScreen struct {
	tracker *progress.Tracker
	active  tab
	scroll  int
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen reading from the given tracker.
func New(tracker *progress.Tracker) *StatsScreen {
	return &StatsScreen{tracker: tracker}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Tab"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if s.active > 0 {
			s.active--
			s.scroll = 0
		}
	case "right", "l", "tab":
		if int(s.active) < len(tabNames)-1 {
			s.active++
			s.scroll = 0
		}
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderTabs(width))
	b.WriteString("\n\n")

	var body string
	switch s.active {
	case tabOverview:
		body = s.renderOverview(width)
	case tabCategories:
		body = s.renderCategories(width)
	case tabAchievements:
		body = s.renderAchievements(width)
	}

	lines := strings.Split(body, "\n")
	visible := height - 6
	if visible < 1 {
		visible = 1
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[s.scroll:end], "\n"))
	return b.String()
}

func (s *StatsScreen) renderTabs(width int) string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2)
		if tab(i) == s.active {
			style = style.Foreground(theme.Primary).Bold(true).Underline(true)
		}
		parts[i] = style.Render(name)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (s *StatsScreen) renderOverview(width int) string {
	st := s.tracker.Stats
	if st.TotalAttempts == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\nNo attempts yet. Finish a quiz to see your statistics.")
	}

	var b strings.Builder

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(24).PaddingLeft(4)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	row := func(name, val string) {
		b.WriteString(label.Render(name) + value.Render(val))
		b.WriteString("\n")
	}

	row("Attempts", fmt.Sprintf("%d", st.TotalAttempts))
	row("Questions answered", fmt.Sprintf("%d", st.TotalQuestionsAnswered))
	row("Average score", fmt.Sprintf("%.1f%%", st.AverageScore))
	row("Best score", fmt.Sprintf("%.1f%%", st.BestScore))
	row("Time studied", formatSeconds(st.TotalTimeSpent))
	if st.FavoriteCategory != "" {
		row("Favorite category", st.FavoriteCategory)
	}
	b.WriteString("\n")
	row("Current streak", fmt.Sprintf("%d days", st.StudyStreak.CurrentStreak))
	row("Longest streak", fmt.Sprintf("%d days", st.StudyStreak.LongestStreak))
	row("Study days", fmt.Sprintf("%d", st.StudyStreak.TotalStudyDays))

	if weak := s.tracker.WeakAreas(); len(weak) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(theme.Error).
			Render("Weak areas: " + strings.Join(weak, ", ")))
		b.WriteString("\n")
	}

	if recs := s.tracker.Recommendations(); len(recs) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(theme.TextDim).
			Render("Suggestions"))
		b.WriteString("\n")
		for _, rec := range recs {
			b.WriteString(lipgloss.NewStyle().
				PaddingLeft(6).
				Foreground(theme.Text).
				Render("• " + rec))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *StatsScreen) renderCategories(width int) string {
	cps := s.tracker.CategoryProgress
	if len(cps) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\nNo category data yet.")
	}

	barWidth := width - 40
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	for _, cp := range cps {
		name := lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(theme.Secondary).
			Bold(true).
			Render(cp.CategoryName)
		b.WriteString(name)
		b.WriteString("\n")

		bar := components.NewProgressBar("", cp.AverageScore/100, false, barWidth)
		b.WriteString(fmt.Sprintf("    %s %.1f%%", bar.View(), cp.AverageScore))
		b.WriteString("\n")

		detail := fmt.Sprintf("    %d attempts, best %.1f%%, %s",
			cp.TotalAttempts, cp.BestScore, formatSeconds(cp.TimeSpent))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString("\n")

		diff := fmt.Sprintf("    easy %s   medium %s   hard %s",
			formatDifficulty(cp.Easy), formatDifficulty(cp.Medium), formatDifficulty(cp.Hard))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(diff))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (s *StatsScreen) renderAchievements(width int) string {
	var b strings.Builder
	for _, a := range s.tracker.Achievements {
		marker := "🔒"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if a.IsUnlocked {
			marker = "★"
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		b.WriteString(style.PaddingLeft(4).Render(fmt.Sprintf("%s %s", marker, a.Title)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(7).
			Foreground(theme.TextDim).
			Render(a.Description))
		if a.IsUnlocked && a.UnlockedAt != nil {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("  (" + a.UnlockedAt.Format("2006-01-02") + ")"))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func formatDifficulty(ds progress.DifficultyStats) string {
	if ds.Attempts == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%% (%d)", ds.AverageScore, ds.Attempts)
}

func formatSeconds(secs int) string {
	if secs >= 3600 {
		return fmt.Sprintf("%dh %dm", secs/3600, secs%3600/60)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}
