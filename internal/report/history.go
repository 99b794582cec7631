package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/Rafi-Luffy/ManaQuiz/internal/store"
)

// WriteHistory writes the attempt log as CSV, one row per attempt in
// sequence order.
func WriteHistory(w io.Writer, records []store.AttemptRecord) error {
	cw := csv.NewWriter(w)

	header := []string{"#", "Date", "Exam", "Category", "Difficulty", "Score", "Correct", "Questions", "Time Taken", "Source"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			fmt.Sprintf("%d", r.Sequence),
			r.Timestamp.Format(time.RFC3339),
			r.ExamTitle,
			r.Category,
			r.Difficulty,
			fmt.Sprintf("%.1f%%", r.Score),
			fmt.Sprintf("%d", r.CorrectAnswers),
			fmt.Sprintf("%d", r.TotalQuestions),
			formatDuration(r.TimeSpent),
			r.Source,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
