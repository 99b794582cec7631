// Package setup implements the quiz configuration wizard: question
// source, course name, count, difficulty, mode, and duration.
package setup

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Rafi-Luffy/ManaQuiz/internal/bank"
	"github.com/Rafi-Luffy/ManaQuiz/internal/exam"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ingest"
	"github.com/Rafi-Luffy/ManaQuiz/internal/progress"
	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
	"github.com/Rafi-Luffy/ManaQuiz/internal/router"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screen"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screens/session"
	"github.com/Rafi-Luffy/ManaQuiz/internal/store"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/components"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/layout"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/theme"
)

// step identifies the current wizard page.
type step int

const (
	stepSource step = iota
	stepCategory
	stepFiles
	stepCourseName
	stepCount
	stepDifficulty
	stepMode
	stepDuration
	stepConfirm
)

var difficultyOptions = []quiz.Difficulty{
	quiz.DifficultyMixed,
	quiz.DifficultyEasy,
	quiz.DifficultyMedium,
	quiz.DifficultyHard,
}

var modeOptions = []exam.Mode{exam.ModeTimed, exam.ModePractice}

// SetupScreen walks through the quiz configuration wizard and launches
// the session.
type SetupScreen struct {
	tracker   *progress.Tracker
	attempts  store.AttemptRepo
	snapshots store.SnapshotRepo
	rng       *rand.Rand

	step       step
	sourceIdx  int
	categories []bank.CategorySummary
	catIdx     int
	diffIdx    int
	modeIdx    int

	filesInput    components.TextInput
	nameInput     components.TextInput
	countInput    components.TextInput
	durationInput components.TextInput

	errMsg string
	notice string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen with injected dependencies.
func New(tracker *progress.Tracker, attempts store.AttemptRepo, snapshots store.SnapshotRepo, rng *rand.Rand) *SetupScreen {
	return &SetupScreen{
		tracker:       tracker,
		attempts:      attempts,
		snapshots:     snapshots,
		rng:           rng,
		categories:    bank.Categories(),
		filesInput:    components.NewTextInput("path/to/questions.txt ...", false, 0),
		nameInput:     components.NewTextInput("e.g. Operating Systems", false, 60),
		countInput:    components.NewTextInput("10", true, 3),
		durationInput: components.NewTextInput("30", true, 3),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Quiz Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return s, s.updateInput(msg)
	}

	switch s.step {
	case stepSource:
		switch kmsg.String() {
		case "up", "k":
			if s.sourceIdx > 0 {
				s.sourceIdx--
			}
		case "down", "j":
			if s.sourceIdx < 1 {
				s.sourceIdx++
			}
		case "enter":
			if s.sourceIdx == 0 {
				s.step = stepCategory
			} else {
				s.step = stepFiles
				return s, s.filesInput.Init()
			}
		}
		return s, nil

	case stepCategory:
		switch kmsg.String() {
		case "up", "k":
			if s.catIdx > 0 {
				s.catIdx--
			}
		case "down", "j":
			if s.catIdx < len(s.categories)-1 {
				s.catIdx++
			}
		case "enter":
			s.step = stepCourseName
			return s, s.nameInput.Init()
		}
		return s, nil

	case stepDifficulty:
		switch kmsg.String() {
		case "up", "k":
			if s.diffIdx > 0 {
				s.diffIdx--
			}
		case "down", "j":
			if s.diffIdx < len(difficultyOptions)-1 {
				s.diffIdx++
			}
		case "enter":
			s.step = stepMode
		}
		return s, nil

	case stepMode:
		switch kmsg.String() {
		case "up", "k":
			if s.modeIdx > 0 {
				s.modeIdx--
			}
		case "down", "j":
			if s.modeIdx < len(modeOptions)-1 {
				s.modeIdx++
			}
		case "enter":
			if modeOptions[s.modeIdx] == exam.ModeTimed {
				s.step = stepDuration
				return s, s.durationInput.Init()
			}
			s.step = stepConfirm
		}
		return s, nil

	case stepFiles, stepCourseName, stepCount, stepDuration:
		if kmsg.String() == "enter" {
			return s.advanceFromInput()
		}
		return s, s.updateInput(msg)

	case stepConfirm:
		if kmsg.String() == "enter" {
			return s.launch()
		}
		return s, nil
	}

	return s, nil
}

// updateInput forwards a message to whichever text input is active.
func (s *SetupScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.step {
	case stepFiles:
		s.filesInput, cmd = s.filesInput.Update(msg)
	case stepCourseName:
		s.nameInput, cmd = s.nameInput.Update(msg)
	case stepCount:
		s.countInput, cmd = s.countInput.Update(msg)
	case stepDuration:
		s.durationInput, cmd = s.durationInput.Update(msg)
	}
	return cmd
}

// advanceFromInput validates the active input and moves to the next step.
func (s *SetupScreen) advanceFromInput() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	switch s.step {
	case stepFiles:
		if strings.TrimSpace(s.filesInput.Value()) == "" {
			s.errMsg = "enter at least one file path"
			return s, nil
		}
		s.step = stepCourseName
		return s, s.nameInput.Init()

	case stepCourseName:
		if strings.TrimSpace(s.nameInput.Value()) == "" {
			s.errMsg = "course name is required"
			return s, nil
		}
		s.step = stepCount
		return s, s.countInput.Init()

	case stepCount:
		if _, err := s.countInput.NumericValue(); err != nil {
			s.errMsg = "enter a number of questions"
			return s, nil
		}
		s.step = stepDifficulty
		return s, nil

	case stepDuration:
		if _, err := s.durationInput.NumericValue(); err != nil {
			s.errMsg = "enter a duration in minutes"
			return s, nil
		}
		s.step = stepConfirm
		return s, nil
	}
	return s, nil
}

// launch builds the question pool, validates the configuration, and
// replaces this screen with the running session.
func (s *SetupScreen) launch() (screen.Screen, tea.Cmd) {
	s.errMsg = ""

	cfg := s.buildConfig()

	var pool []quiz.Question
	source := progress.SourceSample
	fileName := ""
	if s.sourceIdx == 0 {
		pool = bank.QuestionsByCategory(s.rng, s.categories[s.catIdx].ID, "", quiz.DifficultyMixed, 0)
	} else {
		paths := strings.Fields(s.filesInput.Value())
		if len(paths) == 0 {
			s.errMsg = "enter at least one file path"
			return s, nil
		}
		result := ingest.ProcessFiles(s.rng, paths)
		pool = result.Questions
		source = progress.SourceUpload
		fileName = filepath.Base(paths[0])
		if len(result.Failures) > 0 {
			s.notice = fmt.Sprintf("%d file(s) could not be read and were skipped", len(result.Failures))
		}
	}

	eligible := len(quiz.FilterByDifficulty(pool, cfg.Difficulty))
	if err := cfg.Validate(eligible); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	ex := exam.New(cfg, pool, s.rng)
	category := s.examCategory(pool)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: session.New(ex, s.tracker, s.attempts, s.snapshots, source, category, fileName),
		}
	}
}

func (s *SetupScreen) buildConfig() exam.Config {
	count, _ := s.countInput.NumericValue()
	duration := 0
	mode := modeOptions[s.modeIdx]
	if mode == exam.ModeTimed {
		duration, _ = s.durationInput.NumericValue()
	}
	return exam.Config{
		CourseName:   strings.TrimSpace(s.nameInput.Value()),
		NumQuestions: count,
		Duration:     duration,
		Difficulty:   difficultyOptions[s.diffIdx],
		Mode:         mode,
	}
}

// examCategory picks the attempt category label: the bank category ID
// for bundled quizzes, the dominant classified category for uploads.
func (s *SetupScreen) examCategory(pool []quiz.Question) string {
	if s.sourceIdx == 0 {
		return s.categories[s.catIdx].ID
	}
	counts := map[string]int{}
	best := "General"
	for _, q := range pool {
		counts[q.Category]++
		if counts[q.Category] > counts[best] {
			best = q.Category
		}
	}
	return best
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	b.WriteString("\n")
	switch s.step {
	case stepSource:
		b.WriteString(title.Render("Where should the questions come from?"))
		b.WriteString("\n\n")
		b.WriteString(centeredOptions(width, []string{"Bundled question bank", "Your own files"}, s.sourceIdx))

	case stepCategory:
		b.WriteString(title.Render("Pick a category"))
		b.WriteString("\n\n")
		labels := make([]string, len(s.categories))
		for i, c := range s.categories {
			total := 0
			for _, sub := range c.Subcategories {
				total += sub.QuestionCount
			}
			labels[i] = fmt.Sprintf("%s (%d questions)", c.Name, total)
		}
		b.WriteString(centeredOptions(width, labels, s.catIdx))

	case stepFiles:
		b.WriteString(title.Render("Which files should be scanned for questions?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.filesInput.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Render("Separate multiple paths with spaces")))

	case stepCourseName:
		b.WriteString(title.Render("Name this quiz"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.nameInput.View()))

	case stepCount:
		b.WriteString(title.Render("How many questions?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.countInput.View()))

	case stepDifficulty:
		b.WriteString(title.Render("Difficulty"))
		b.WriteString("\n\n")
		labels := make([]string, len(difficultyOptions))
		for i, d := range difficultyOptions {
			labels[i] = string(d)
		}
		b.WriteString(centeredOptions(width, labels, s.diffIdx))

	case stepMode:
		b.WriteString(title.Render("Mode"))
		b.WriteString("\n\n")
		b.WriteString(centeredOptions(width, []string{"Timed (countdown)", "Practice (no clock)"}, s.modeIdx))

	case stepDuration:
		b.WriteString(title.Render("Duration in minutes"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.durationInput.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Render(fmt.Sprintf("Between %d and %d", exam.MinDuration, exam.MaxDuration))))

	case stepConfirm:
		cfg := s.buildConfig()
		b.WriteString(title.Render("Ready?"))
		b.WriteString("\n\n")
		lines := []string{
			fmt.Sprintf("Course:      %s", cfg.CourseName),
			fmt.Sprintf("Questions:   %d", cfg.NumQuestions),
			fmt.Sprintf("Difficulty:  %s", cfg.Difficulty),
			fmt.Sprintf("Mode:        %s", cfg.Mode),
		}
		if cfg.Mode == exam.ModeTimed {
			lines = append(lines, fmt.Sprintf("Duration:    %d min", cfg.Duration))
		}
		for _, l := range lines {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body.Render(l)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Render("Press Enter to start")))
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice)))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}

	return b.String()
}

// centeredOptions renders a vertical option list with a cursor.
func centeredOptions(width int, labels []string, selected int) string {
	var b strings.Builder
	for i, label := range labels {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == selected {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+label)))
		b.WriteString("\n")
	}
	return b.String()
}
