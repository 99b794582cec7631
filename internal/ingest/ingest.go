// Package ingest runs the file-to-questions pipeline: extract text from
// each input, parse MCQ blocks, deduplicate across files, and shuffle the
// combined result.
package ingest

import (
	"math/rand"
	"os"

	"github.com/Rafi-Luffy/ManaQuiz/internal/extract"
	"github.com/Rafi-Luffy/ManaQuiz/internal/parse"
	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// FileError records a per-file failure. One bad file never aborts the
// batch; it simply contributes zero questions.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

// Result holds the combined outcome of a batch run.
type Result struct {
	Questions []quiz.Question
	Failures  []FileError
}

// ProcessFiles extracts and parses every named file, isolating per-file
// failures, then dedups and shuffles the combined question list.
func ProcessFiles(rng *rand.Rand, paths []string) Result {
	var res Result

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			res.Failures = append(res.Failures, FileError{Name: path, Err: err})
			continue
		}
		text, err := extract.Extract(path, f)
		f.Close()
		if err != nil {
			res.Failures = append(res.Failures, FileError{Name: path, Err: err})
			continue
		}
		res.Questions = append(res.Questions, parse.Parse(text, path, rng)...)
	}

	res.Questions = quiz.Shuffle(rng, parse.Dedup(res.Questions))
	return res
}
