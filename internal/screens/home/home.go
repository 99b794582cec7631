// Package home renders the main menu with a compact stats bar.
package home

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Rafi-Luffy/ManaQuiz/internal/progress"
	"github.com/Rafi-Luffy/ManaQuiz/internal/router"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screen"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screens/setup"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screens/stats"
	"github.com/Rafi-Luffy/ManaQuiz/internal/store"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/components"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu    components.Menu
	tracker *progress.Tracker
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies.
func New(tracker *progress.Tracker, attempts store.AttemptRepo, snapshots store.SnapshotRepo, rng *rand.Rand) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(tracker, attempts, snapshots, rng),
				}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(tracker)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		tracker: tracker,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("M A N A Q U I Z")
	subtitle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Practice exams from your own study material")

	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(subtitle)
	b.WriteString("\n\n")

	st := h.tracker.Stats
	statsLine := fmt.Sprintf("Attempts: %d    Average: %.0f%%    Best: %.0f%%    Streak: %d days",
		st.TotalAttempts, st.AverageScore, st.BestScore, st.StudyStreak.CurrentStreak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
