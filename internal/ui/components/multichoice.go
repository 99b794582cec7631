package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/theme"
)

// MultiChoice is a four-option selector for one exam question. It
// tracks the cursor position, the recorded choice, and the
// marked-for-review flag; correctness is never revealed while the exam
// is running.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int // cursor position
	Chosen   int // recorded answer index, -1 when unanswered
	Marked   bool
}

// NewMultiChoice creates a selector for the given question. A previous
// choice of -1 means unanswered.
func NewMultiChoice(question string, options []string, chosen int, marked bool) MultiChoice {
	selected := chosen
	if selected < 0 {
		selected = 0
	}
	return MultiChoice{
		Question: question,
		Options:  options,
		Selected: selected,
		Chosen:   chosen,
		Marked:   marked,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and choice recording.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", " ":
		m.Chosen = m.Selected
	case "a", "1":
		m.Chosen = 0
	case "b", "2":
		if len(m.Options) > 1 {
			m.Chosen = 1
		}
	case "c", "3":
		if len(m.Options) > 2 {
			m.Chosen = 2
		}
	case "d", "4":
		if len(m.Options) > 3 {
			m.Chosen = 3
		}
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question)
	if m.Marked {
		s += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("⚑ marked")
	}
	s += "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := labels[i]
		cursor := "  "
		if i == m.Selected {
			cursor = "▸ "
		}
		radio := "( )"
		if i == m.Chosen {
			radio = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", cursor, radio, label, opt)

		switch {
		case i == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Answer returns the chosen option text, or "" when unanswered.
func (m MultiChoice) Answer() string {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}
