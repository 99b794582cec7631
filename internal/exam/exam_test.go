package exam

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

func testQuestion(id string, d quiz.Difficulty) quiz.Question {
	return quiz.Question{
		ID:            id,
		Text:          "question " + id,
		Options:       []string{"right", "wrong 1", "wrong 2", "wrong 3"},
		CorrectAnswer: "right",
		Difficulty:    d,
	}
}

func testPool(n int, d quiz.Difficulty) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = testQuestion(fmt.Sprintf("q%d", i+1), d)
	}
	return qs
}

func newTestExam(cfg Config, pool []quiz.Question) *Exam {
	return New(cfg, pool, rand.New(rand.NewSource(1)))
}

func TestStartFixesRunSequence(t *testing.T) {
	pool := append(testPool(3, quiz.DifficultyEasy), testPool(2, quiz.DifficultyHard)...)
	e := newTestExam(Config{
		CourseName:   "Go",
		NumQuestions: 2,
		Difficulty:   quiz.DifficultyEasy,
		Mode:         ModePractice,
	}, pool)

	e.Start()
	if !e.State.IsStarted {
		t.Fatal("exam not started")
	}
	if len(e.Questions) != 2 {
		t.Fatalf("run sequence has %d questions, want 2", len(e.Questions))
	}
	for _, q := range e.Questions {
		if q.Difficulty != quiz.DifficultyEasy {
			t.Errorf("question %s has difficulty %q, want easy", q.ID, q.Difficulty)
		}
	}

	first := e.Questions[0].ID
	e.Start() // second Start must not reshuffle
	if e.Questions[0].ID != first {
		t.Error("Start on a started exam changed the run sequence")
	}
}

func TestStartMixedUsesWholePool(t *testing.T) {
	pool := append(testPool(3, quiz.DifficultyEasy), testPool(2, quiz.DifficultyHard)...)
	e := newTestExam(Config{
		CourseName: "Go",
		Difficulty: quiz.DifficultyMixed,
		Mode:       ModePractice,
	}, pool)

	e.Start()
	if len(e.Questions) != len(pool) {
		t.Errorf("run sequence has %d questions, want %d", len(e.Questions), len(pool))
	}
}

func TestNavigationClamped(t *testing.T) {
	e := newTestExam(Config{CourseName: "Go", Difficulty: quiz.DifficultyMixed, Mode: ModePractice},
		testPool(3, quiz.DifficultyMedium))
	e.Start()

	e.Previous()
	if got := e.State.CurrentQuestionIndex; got != 0 {
		t.Errorf("Previous at start moved to %d, want 0", got)
	}

	e.GoTo(99)
	if got := e.State.CurrentQuestionIndex; got != 2 {
		t.Errorf("GoTo(99) moved to %d, want 2", got)
	}
	e.Next()
	if got := e.State.CurrentQuestionIndex; got != 2 {
		t.Errorf("Next at end moved to %d, want 2", got)
	}
	e.GoTo(-5)
	if got := e.State.CurrentQuestionIndex; got != 0 {
		t.Errorf("GoTo(-5) moved to %d, want 0", got)
	}
}

func TestAnswerOverwritesAndAcceptsAnything(t *testing.T) {
	e := newTestExam(Config{CourseName: "Go", Difficulty: quiz.DifficultyMixed, Mode: ModePractice},
		testPool(2, quiz.DifficultyMedium))

	e.Answer("q1", "right") // before Start: ignored
	e.Start()
	if len(e.State.Answers) != 0 {
		t.Fatal("answer recorded before Start")
	}

	e.Answer("q1", "wrong 1")
	e.Answer("q1", "right")
	if got := e.State.Answers["q1"]; got != "right" {
		t.Errorf("answer = %q, want overwritten value %q", got, "right")
	}

	e.Answer("q2", "not an option at all")
	if got := e.State.Answers["q2"]; got != "not an option at all" {
		t.Errorf("free-form answer = %q, want stored verbatim", got)
	}
}

func TestMarkUnmark(t *testing.T) {
	e := newTestExam(Config{CourseName: "Go", Difficulty: quiz.DifficultyMixed, Mode: ModePractice},
		testPool(1, quiz.DifficultyMedium))
	e.Start()

	e.Mark("q1")
	e.Mark("q1")
	if !e.State.Marked["q1"] {
		t.Error("q1 not marked")
	}
	e.Unmark("q1")
	e.Unmark("q1")
	if e.State.Marked["q1"] {
		t.Error("q1 still marked after Unmark")
	}
}

func TestSubmitScoresOnce(t *testing.T) {
	e := newTestExam(Config{CourseName: "Go", Difficulty: quiz.DifficultyMixed, Mode: ModePractice},
		testPool(5, quiz.DifficultyMedium))
	e.Start()

	// Three correct, one wrong, one unanswered.
	e.Answer(e.Questions[0].ID, "right")
	e.Answer(e.Questions[1].ID, "right")
	e.Answer(e.Questions[2].ID, "right")
	e.Answer(e.Questions[3].ID, "wrong 1")

	e.Submit()
	e.Submit()
	if len(e.Results) != 1 {
		t.Fatalf("got %d results after double Submit, want 1", len(e.Results))
	}

	r := e.Results[0]
	if r.Score != 3 {
		t.Errorf("score = %d, want 3", r.Score)
	}
	if r.TotalQuestions != 5 {
		t.Errorf("total = %d, want 5", r.TotalQuestions)
	}
	if r.Percentage != 60 {
		t.Errorf("percentage = %d, want 60", r.Percentage)
	}

	// A completed exam rejects further mutation.
	e.Answer(e.Questions[4].ID, "right")
	if _, ok := e.State.Answers[e.Questions[4].ID]; ok {
		t.Error("answer recorded after completion")
	}
}

func TestResultSnapshotIsolatedFromLaterAnswers(t *testing.T) {
	e := newTestExam(Config{CourseName: "Go", Difficulty: quiz.DifficultyMixed, Mode: ModePractice},
		testPool(2, quiz.DifficultyMedium))
	e.Start()
	e.Answer(e.Questions[0].ID, "right")
	e.Submit()

	r := e.Results[0]
	e.State.Answers[e.Questions[1].ID] = "right"
	if len(r.Answers) != 1 {
		t.Errorf("result answers grew to %d after external mutation, want 1", len(r.Answers))
	}
}

func TestTickExpiresExactlyOnce(t *testing.T) {
	e := newTestExam(Config{
		CourseName:   "Go",
		Difficulty:   quiz.DifficultyMixed,
		Mode:         ModeTimed,
		Duration:     10,
		NumQuestions: 2,
	}, testPool(2, quiz.DifficultyMedium))
	e.Start()

	if e.State.TimeRemaining != 10*60 {
		t.Fatalf("time remaining = %d, want %d", e.State.TimeRemaining, 10*60)
	}

	e.State.TimeRemaining = 2
	if got := e.Tick(); got != TickRunning {
		t.Fatalf("first tick = %v, want TickRunning", got)
	}
	if got := e.Tick(); got != TickExpired {
		t.Fatalf("second tick = %v, want TickExpired", got)
	}
	if !e.State.IsCompleted {
		t.Error("exam not completed after expiry")
	}
	if len(e.Results) != 1 {
		t.Errorf("got %d results after expiry, want 1", len(e.Results))
	}
	if got := e.Tick(); got != TickIgnored {
		t.Errorf("tick after completion = %v, want TickIgnored", got)
	}
}

func TestTickIgnoredInPracticeMode(t *testing.T) {
	e := newTestExam(Config{CourseName: "Go", Difficulty: quiz.DifficultyMixed, Mode: ModePractice},
		testPool(1, quiz.DifficultyMedium))
	e.Start()
	if got := e.Tick(); got != TickIgnored {
		t.Errorf("tick in practice mode = %v, want TickIgnored", got)
	}
}

func TestResetKeepsHistory(t *testing.T) {
	e := newTestExam(Config{CourseName: "Go", Difficulty: quiz.DifficultyMixed, Mode: ModePractice},
		testPool(2, quiz.DifficultyMedium))
	e.Start()
	e.Submit()
	e.Reset()

	if e.State.IsStarted || e.State.IsCompleted {
		t.Error("state not reset")
	}
	if e.Questions != nil {
		t.Error("run sequence survived Reset")
	}
	if len(e.Results) != 1 {
		t.Errorf("history lost: %d results, want 1", len(e.Results))
	}
	if e.CurrentQuestion() != nil {
		t.Error("CurrentQuestion should be nil after Reset")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		CourseName:   "Go",
		NumQuestions: 5,
		Duration:     30,
		Difficulty:   quiz.DifficultyMixed,
		Mode:         ModeTimed,
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		available int
		wantErr   error
	}{
		{"valid", func(c *Config) {}, 10, nil},
		{"empty pool", func(c *Config) {}, 0, ErrNoQuestions},
		{"too many requested", func(c *Config) { c.NumQuestions = 50 }, 10, ErrTooManyQuestions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate(tt.available)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	reject := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty course name", func(c *Config) { c.CourseName = "" }},
		{"zero count", func(c *Config) { c.NumQuestions = 0 }},
		{"duration too short", func(c *Config) { c.Duration = 5 }},
		{"duration too long", func(c *Config) { c.Duration = 500 }},
		{"unknown mode", func(c *Config) { c.Mode = "marathon" }},
		{"unknown difficulty", func(c *Config) { c.Difficulty = "brutal" }},
	}
	for _, tt := range reject {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if cfg.Validate(10) == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}
