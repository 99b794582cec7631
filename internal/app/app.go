package app

import (
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Rafi-Luffy/ManaQuiz/internal/progress"
	"github.com/Rafi-Luffy/ManaQuiz/internal/router"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screen"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screens/home"
	"github.com/Rafi-Luffy/ManaQuiz/internal/store"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *progress.Tracker
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(tracker *progress.Tracker, attempts store.AttemptRepo, snapshots store.SnapshotRepo, rng *rand.Rand) AppModel {
	homeScreen := home.New(tracker, attempts, snapshots, rng)
	return AppModel{
		router:  router.New(homeScreen),
		tracker: tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.tracker.Stats.StudyStreak.CurrentStreak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(tracker *progress.Tracker, attempts store.AttemptRepo, snapshots store.SnapshotRepo, rng *rand.Rand) error {
	p := tea.NewProgram(newAppModel(tracker, attempts, snapshots, rng))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
