// Package report renders a completed exam result as a two-sheet CSV
// document: a summary sheet of key/value pairs, a blank separator row,
// and one row per question.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Rafi-Luffy/ManaQuiz/internal/exam"
)

// Write emits the report for one result. The caller owns the writer.
func Write(w io.Writer, res exam.Result) error {
	cw := csv.NewWriter(w)

	summary := [][]string{
		{"Course", res.CourseName},
		{"Completed At", res.CompletedAt.Format(time.RFC3339)},
		{"Score", strconv.Itoa(res.Score)},
		{"Total Questions", strconv.Itoa(res.TotalQuestions)},
		{"Percentage", strconv.Itoa(res.Percentage) + "%"},
		{"Time Taken", formatDuration(res.TimeTaken)},
		{"Difficulty", string(res.Difficulty)},
		{"Mode", string(res.Mode)},
	}
	for _, row := range summary {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	if err := cw.Write([]string{""}); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	header := []string{"#", "Question", "Your Answer", "Correct Answer", "Result", "Difficulty", "Category"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, q := range res.Questions {
		answer := res.Answers[q.ID]
		verdict := "Incorrect"
		switch {
		case answer == "":
			verdict = "Unanswered"
		case answer == q.CorrectAnswer:
			verdict = "Correct"
		}
		row := []string{
			strconv.Itoa(i + 1),
			q.Text,
			answer,
			q.CorrectAnswer,
			verdict,
			string(q.Difficulty),
			q.Category,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write question row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
