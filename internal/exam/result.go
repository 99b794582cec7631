package exam

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// Result is the immutable scored snapshot taken when an exam completes.
type Result struct {
	ID             string            `json:"id"`
	CourseName     string            `json:"courseName"`
	Score          int               `json:"score"` // correct count
	TotalQuestions int               `json:"totalQuestions"`
	Percentage     int               `json:"percentage"`
	TimeTaken      int               `json:"timeTaken"` // seconds
	CompletedAt    time.Time         `json:"completedAt"`
	Questions      []quiz.Question   `json:"questions"`
	Answers        map[string]string `json:"answers"`
	Difficulty     quiz.Difficulty   `json:"difficulty"`
	Mode           Mode              `json:"mode"`
}

// score builds the Result for the current completed state. Correctness
// is an exact string match of the recorded answer against the question's
// correct option.
func (e *Exam) score() Result {
	correct := 0
	for _, q := range e.Questions {
		if e.State.Answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}

	percentage := 0
	if len(e.Questions) > 0 {
		percentage = int(math.Round(float64(correct) / float64(len(e.Questions)) * 100))
	}

	timeTaken := 0
	if !e.State.StartTime.IsZero() && !e.State.EndTime.IsZero() {
		timeTaken = int(e.State.EndTime.Sub(e.State.StartTime).Seconds())
	}

	// Snapshot the answers map so later Reset/Answer calls cannot reach
	// into the result.
	answers := make(map[string]string, len(e.State.Answers))
	for k, v := range e.State.Answers {
		answers[k] = v
	}

	return Result{
		ID:             uuid.NewString(),
		CourseName:     e.Config.CourseName,
		Score:          correct,
		TotalQuestions: len(e.Questions),
		Percentage:     percentage,
		TimeTaken:      timeTaken,
		CompletedAt:    e.State.EndTime,
		Questions:      e.Questions,
		Answers:        answers,
		Difficulty:     e.Config.Difficulty,
		Mode:           e.Config.Mode,
	}
}
