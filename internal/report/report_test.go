package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Rafi-Luffy/ManaQuiz/internal/exam"
	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

func TestWriteTwoSheets(t *testing.T) {
	res := exam.Result{
		ID:             "r1",
		CourseName:     "Networks 101",
		Score:          1,
		TotalQuestions: 2,
		Percentage:     50,
		TimeTaken:      125,
		CompletedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Difficulty:     quiz.DifficultyMedium,
		Mode:           exam.ModeTimed,
		Questions: []quiz.Question{
			{ID: "q1", Text: "What is TCP?", Options: []string{"A protocol", "B", "C", "D"}, CorrectAnswer: "A protocol", Difficulty: quiz.DifficultyEasy, Category: "Computer Science"},
			{ID: "q2", Text: "What is UDP?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Difficulty: quiz.DifficultyMedium, Category: "Computer Science"},
		},
		Answers: map[string]string{"q1": "A protocol"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, res); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Course,Networks 101",
		"Percentage,50%",
		"Time Taken,2:05",
		"What is TCP?,A protocol,A protocol,Correct",
		"What is UDP?,,B,Unanswered",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 8 summary rows, separator, header, 2 question rows.
	if len(lines) != 12 {
		t.Errorf("got %d lines, want 12\n%s", len(lines), out)
	}
}

func TestWriteIncorrectVerdict(t *testing.T) {
	res := exam.Result{
		CourseName:     "Quick",
		TotalQuestions: 1,
		Questions: []quiz.Question{
			{ID: "q1", Text: "Pick A", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A", Difficulty: quiz.DifficultyEasy, Category: "General"},
		},
		Answers: map[string]string{"q1": "C"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, res); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "Pick A,C,A,Incorrect") {
		t.Errorf("missing incorrect verdict row:\n%s", buf.String())
	}
}
