package parse

import (
	"strings"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// Dedup removes questions whose lowercased, trimmed text has already been
// seen. The first occurrence wins; relative order is preserved. Running
// Dedup on its own output is a no-op.
func Dedup(qs []quiz.Question) []quiz.Question {
	seen := make(map[string]bool, len(qs))
	out := make([]quiz.Question, 0, len(qs))
	for _, q := range qs {
		key := strings.ToLower(strings.TrimSpace(q.Text))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}
