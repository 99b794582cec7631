// Package session runs one exam in the terminal: question display,
// answer recording, navigation, review marks, and the countdown.
package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Rafi-Luffy/ManaQuiz/internal/exam"
	"github.com/Rafi-Luffy/ManaQuiz/internal/progress"
	"github.com/Rafi-Luffy/ManaQuiz/internal/router"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screen"
	"github.com/Rafi-Luffy/ManaQuiz/internal/screens/summary"
	"github.com/Rafi-Luffy/ManaQuiz/internal/store"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/components"
	"github.com/Rafi-Luffy/ManaQuiz/internal/ui/layout"
)

// SessionScreen implements screen.Screen for a running exam.
type SessionScreen struct {
	exam      *exam.Exam
	tracker   *progress.Tracker
	attempts  store.AttemptRepo
	snapshots store.SnapshotRepo

	source   progress.AttemptSource
	category string
	fileName string

	mc            components.MultiChoice
	confirmSubmit bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for a configured exam. The exam is
// started by Init.
func New(ex *exam.Exam, tracker *progress.Tracker, attempts store.AttemptRepo, snapshots store.SnapshotRepo, source progress.AttemptSource, category, fileName string) *SessionScreen {
	return &SessionScreen{
		exam:      ex,
		tracker:   tracker,
		attempts:  attempts,
		snapshots: snapshots,
		source:    source,
		category:  category,
		fileName:  fileName,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.exam.Start()
	s.syncChoice()
	if s.exam.Config.Mode == exam.ModeTimed {
		return tickCmd()
	}
	return nil
}

func (s *SessionScreen) Title() string {
	return s.exam.Config.CourseName
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmSubmit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "Enter", Description: "Answer"},
		{Key: "M", Description: "Mark"},
		{Key: "S", Description: "Submit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case examEndMsg:
		return s.handleEnd(msg.timeExpired)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleTick() (screen.Screen, tea.Cmd) {
	switch s.exam.Tick() {
	case exam.TickExpired:
		return s, func() tea.Msg { return examEndMsg{timeExpired: true} }
	case exam.TickRunning:
		return s, tickCmd()
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmSubmit {
		switch key {
		case "y", "Y":
			s.confirmSubmit = false
			s.exam.Submit()
			return s, func() tea.Msg { return examEndMsg{} }
		case "n", "N":
			s.confirmSubmit = false
		}
		return s, nil
	}

	switch key {
	case "left", "h":
		s.exam.Previous()
		s.syncChoice()
		return s, nil
	case "right", "l":
		s.exam.Next()
		s.syncChoice()
		return s, nil
	case "m":
		if q := s.exam.CurrentQuestion(); q != nil {
			if s.exam.State.Marked[q.ID] {
				s.exam.Unmark(q.ID)
			} else {
				s.exam.Mark(q.ID)
			}
			s.mc.Marked = s.exam.State.Marked[q.ID]
		}
		return s, nil
	case "s":
		s.confirmSubmit = true
		return s, nil
	}

	// Everything else drives the option selector.
	q := s.exam.CurrentQuestion()
	if q == nil {
		return s, nil
	}
	before := s.mc.Chosen
	s.mc, _ = s.mc.Update(msg)
	if s.mc.Chosen != before && s.mc.Chosen >= 0 {
		s.exam.Answer(q.ID, s.mc.Answer())
		// Recording an answer moves on to the next question.
		if key == "enter" || key == " " {
			s.exam.Next()
			s.syncChoice()
		}
	}
	return s, nil
}

// handleEnd records the attempt, persists it, and swaps in the summary.
func (s *SessionScreen) handleEnd(timeExpired bool) (screen.Screen, tea.Cmd) {
	if len(s.exam.Results) == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	result := s.exam.Results[len(s.exam.Results)-1]

	unlockedBefore := len(s.tracker.UnlockedAchievements())
	attempt := attemptFromResult(result, s.category, s.source, s.fileName)
	s.tracker.RecordAttempt(attempt)
	newAchievements := s.tracker.UnlockedAchievements()[unlockedBefore:]

	s.persist(attempt)

	recs := s.tracker.Recommendations()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(result, timeExpired, newAchievements, recs),
		}
	}
}

// persist appends the attempt event and saves a fresh progress snapshot.
// Failures are non-fatal; the in-memory tracker already holds the data.
func (s *SessionScreen) persist(a progress.Attempt) {
	if s.attempts == nil || s.snapshots == nil {
		return
	}
	ctx := context.Background()

	_ = s.attempts.Append(ctx, store.AttemptEventData{
		AttemptID:      a.ID,
		ExamTitle:      a.ExamTitle,
		Category:       a.Category,
		Subcategory:    a.Subcategory,
		Difficulty:     a.Difficulty,
		TotalQuestions: a.TotalQuestions,
		CorrectAnswers: a.CorrectAnswers,
		Score:          a.Score,
		TimeSpent:      a.TimeSpent,
		Source:         string(a.Source),
		FileName:       a.FileName,
	})

	if blob, err := s.tracker.Export(); err == nil {
		_ = s.snapshots.Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data:      store.SnapshotData{Version: 1, Progress: blob},
		})
		_ = s.snapshots.Prune(ctx, 10)
	}
}

// syncChoice rebuilds the option selector from the exam state for the
// current question.
func (s *SessionScreen) syncChoice() {
	q := s.exam.CurrentQuestion()
	if q == nil {
		s.mc = components.MultiChoice{}
		return
	}
	chosen := -1
	if answer, ok := s.exam.State.Answers[q.ID]; ok {
		for i, opt := range q.Options {
			if opt == answer {
				chosen = i
				break
			}
		}
	}
	s.mc = components.NewMultiChoice(q.Text, q.Options, chosen, s.exam.State.Marked[q.ID])
}

// attemptFromResult converts a scored exam result into a progress
// attempt record.
func attemptFromResult(r exam.Result, category string, source progress.AttemptSource, fileName string) progress.Attempt {
	answers := make([]progress.AnswerRecord, 0, len(r.Questions))
	for _, q := range r.Questions {
		selected := r.Answers[q.ID]
		answers = append(answers, progress.AnswerRecord{
			QuestionID:     q.ID,
			SelectedAnswer: selected,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      selected == q.CorrectAnswer,
		})
	}
	return progress.Attempt{
		ID:             r.ID,
		ExamTitle:      r.CourseName,
		Category:       category,
		Difficulty:     string(r.Difficulty),
		TotalQuestions: r.TotalQuestions,
		CorrectAnswers: r.Score,
		Score:          float64(r.Percentage),
		TimeSpent:      r.TimeTaken,
		CompletedAt:    r.CompletedAt,
		Answers:        answers,
		Source:         source,
		FileName:       fileName,
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
