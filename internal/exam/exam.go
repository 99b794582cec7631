// Package exam implements the quiz lifecycle state machine: configure,
// start, answer/mark/navigate, countdown ticks, and submission into a
// scored, immutable result.
package exam

import (
	"math/rand"
	"time"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// Exam owns one quiz run: the configuration, the candidate question
// pool, the fixed run sequence chosen at Start, the mutable State, and
// the accumulated result history. Callers hold the Exam explicitly and
// pass it where needed; there is no package-level instance.
type Exam struct {
	Config Config

	// Pool is the full set of candidate questions loaded at setup.
	Pool []quiz.Question

	// Questions is the fixed run sequence snapshotted by Start.
	Questions []quiz.Question

	State State

	// Results accumulates one entry per completed run. Reset leaves it
	// untouched.
	Results []Result

	rng *rand.Rand
	now func() time.Time
}

// New creates an Exam over the given question pool. The random source
// drives the Start shuffle; tests pass a seeded one.
func New(cfg Config, pool []quiz.Question, rng *rand.Rand) *Exam {
	return &Exam{
		Config: cfg,
		Pool:   pool,
		State:  newState(),
		rng:    rng,
		now:    time.Now,
	}
}

// Start transitions NotStarted -> Started. It filters the pool by the
// configured difficulty (mixed is a no-op), shuffles, truncates to the
// configured count, and fixes the result as the run's question sequence.
// Callers must have validated the config first; starting with an empty
// eligible pool is a caller-responsibility precondition, not enforced
// here. Start on an already started exam is a no-op.
func (e *Exam) Start() {
	if e.State.IsStarted {
		return
	}

	eligible := quiz.FilterByDifficulty(e.Pool, e.Config.Difficulty)
	shuffled := quiz.Shuffle(e.rng, eligible)

	n := e.Config.NumQuestions
	if n <= 0 || n > len(shuffled) {
		n = len(shuffled)
	}
	e.Questions = shuffled[:n]

	e.State.IsStarted = true
	e.State.StartTime = e.now()
	if e.Config.Mode == ModeTimed {
		e.State.TimeRemaining = e.Config.Duration * 60
	}
}

// Answer records the selected answer for a question, overwriting any
// previous selection. The answer text is accepted as-is, including
// values matching no option; only exact matches against the correct
// answer score at submission. Ignored unless the exam is running.
func (e *Exam) Answer(questionID, answer string) {
	if !e.running() {
		return
	}
	e.State.Answers[questionID] = answer
}

// Mark flags a question for review. Idempotent.
func (e *Exam) Mark(questionID string) {
	if !e.running() {
		return
	}
	e.State.Marked[questionID] = true
}

// Unmark clears a review flag. Idempotent.
func (e *Exam) Unmark(questionID string) {
	if !e.running() {
		return
	}
	delete(e.State.Marked, questionID)
}

// GoTo moves to the question at index, clamped to the run sequence.
func (e *Exam) GoTo(index int) {
	if len(e.Questions) == 0 {
		e.State.CurrentQuestionIndex = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(e.Questions)-1 {
		index = len(e.Questions) - 1
	}
	e.State.CurrentQuestionIndex = index
}

// Next advances to the following question, clamped at the end.
func (e *Exam) Next() {
	e.GoTo(e.State.CurrentQuestionIndex + 1)
}

// Previous moves back one question, clamped at the start.
func (e *Exam) Previous() {
	e.GoTo(e.State.CurrentQuestionIndex - 1)
}

// TickResult reports what a countdown tick did.
type TickResult int

const (
	// TickRunning means time was decremented and the exam continues.
	TickRunning TickResult = iota

	// TickExpired means this tick exhausted the clock and auto-submitted
	// the exam. Reported exactly once so callers can explain why the
	// exam ended.
	TickExpired

	// TickIgnored means the exam was not in a running timed state.
	TickIgnored
)

// Tick consumes one second of remaining time. When the clock reaches
// zero the exam auto-submits; the transition fires exactly once.
func (e *Exam) Tick() TickResult {
	if !e.running() || e.Config.Mode != ModeTimed {
		return TickIgnored
	}
	e.State.TimeRemaining--
	if e.State.TimeRemaining <= 0 {
		e.State.TimeRemaining = 0
		e.complete()
		return TickExpired
	}
	return TickRunning
}

// Submit explicitly completes the exam, scores it, and appends exactly
// one Result to the history. Submitting an already completed exam is a
// no-op and never produces a duplicate result.
func (e *Exam) Submit() {
	if !e.running() {
		return
	}
	e.complete()
}

// Reset returns the exam to its initial shape, discarding in-progress
// answers and the run sequence but keeping the result history.
func (e *Exam) Reset() {
	e.State = newState()
	e.Questions = nil
}

// CurrentQuestion returns the question at the current index, or nil when
// no run sequence exists.
func (e *Exam) CurrentQuestion() *quiz.Question {
	if len(e.Questions) == 0 {
		return nil
	}
	return &e.Questions[e.State.CurrentQuestionIndex]
}

func (e *Exam) running() bool {
	return e.State.IsStarted && !e.State.IsCompleted
}

// complete performs the terminal transition and records the result.
func (e *Exam) complete() {
	e.State.IsCompleted = true
	e.State.EndTime = e.now()
	e.Results = append(e.Results, e.score())
}
