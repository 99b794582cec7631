package exam

import (
	"errors"
	"fmt"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// Mode selects between a countdown-driven run and an untimed one.
type Mode string

const (
	ModeTimed    Mode = "timed"
	ModePractice Mode = "practice"
)

// Duration bounds in minutes for timed mode.
const (
	MinDuration = 10
	MaxDuration = 300
)

var (
	// ErrNoQuestions is returned when the pool has nothing to serve.
	ErrNoQuestions = errors.New("no questions available")

	// ErrTooManyQuestions is returned when the requested count exceeds
	// the available pool.
	ErrTooManyQuestions = errors.New("requested count exceeds available questions")
)

// Config describes a quiz setup. It is created once per run and never
// mutated after Start.
type Config struct {
	CourseName   string          `json:"courseName"`
	NumQuestions int             `json:"numQuestions"`
	Duration     int             `json:"duration"` // minutes, timed mode only
	Difficulty   quiz.Difficulty `json:"difficulty"`
	Mode         Mode            `json:"mode"`
	Categories   []string        `json:"categories"`
}

// Validate checks the config against the number of available questions.
// A failure here blocks progressing to the exam; no partial exam is ever
// started.
func (c Config) Validate(available int) error {
	if c.CourseName == "" {
		return errors.New("course name must not be empty")
	}
	if available == 0 {
		return ErrNoQuestions
	}
	if c.NumQuestions < 1 {
		return errors.New("question count must be positive")
	}
	if c.NumQuestions > available {
		return fmt.Errorf("%w: want %d, have %d", ErrTooManyQuestions, c.NumQuestions, available)
	}
	if c.Mode == ModeTimed && (c.Duration < MinDuration || c.Duration > MaxDuration) {
		return fmt.Errorf("duration must be between %d and %d minutes", MinDuration, MaxDuration)
	}
	if c.Mode != ModeTimed && c.Mode != ModePractice {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Difficulty != quiz.DifficultyMixed && !c.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", c.Difficulty)
	}
	return nil
}
