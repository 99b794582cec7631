// Package parse extracts multiple-choice questions from plain text.
//
// The scanner recognizes exactly one shape:
//
//	N. question text a) opt b) opt c) opt d) opt Answer: x
//
// This is a deliberately bounded heuristic, not a document-understanding
// system. Text yielding zero matches falls back to a canned question pool
// so the pipeline always produces something.
package parse

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/Rafi-Luffy/ManaQuiz/internal/classify"
	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// questionPattern matches a full numbered MCQ block including its answer
// line. Case-insensitive, dot matches newline so blocks may span lines.
var questionPattern = regexp.MustCompile(
	`(?is)(\d+)\.\s*(.+?)\s*([a-d]\).+?[a-d]\).+?[a-d]\).+?[a-d]\).+?)\s*Answer:\s*([a-d])`)

// optionMarker locates the lettered option markers inside a captured
// options block. The text between consecutive markers is the option body.
var optionMarker = regexp.MustCompile(`(?i)[a-d]\)`)

// Parse scans text for MCQ blocks and returns the extracted questions.
// Matches that do not yield exactly four options are discarded. If no
// questions are extracted at all, a fallback set tagged from sourceName
// is returned instead; an empty result therefore never signals failure.
func Parse(text, sourceName string, rng *rand.Rand) []quiz.Question {
	var questions []quiz.Question

	for _, m := range questionPattern.FindAllStringSubmatch(text, -1) {
		questionText := strings.TrimSpace(m[2])
		optionsBlock := m[3]
		answerLetter := strings.ToLower(m[4])

		options := splitOptions(optionsBlock)
		if len(options) != quiz.OptionCount {
			continue
		}

		answerIndex := int(answerLetter[0] - 'a')
		correct := options[answerIndex]

		questions = append(questions, quiz.Question{
			ID:            uuid.NewString(),
			Text:          questionText,
			Options:       options,
			CorrectAnswer: correct,
			Difficulty:    classify.Difficulty(questionText),
			Category:      classify.Category(sourceName, questionText),
			Explanation:   fmt.Sprintf("The correct answer is %s) %s", strings.ToUpper(answerLetter), correct),
		})
	}

	if len(questions) == 0 {
		return Fallback(sourceName, rng)
	}
	return questions
}

// splitOptions slices the options block at each lettered marker and
// returns the trimmed option bodies in order.
func splitOptions(block string) []string {
	locs := optionMarker.FindAllStringIndex(block, -1)
	opts := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(block)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		opts = append(opts, strings.TrimSpace(block[loc[1]:end]))
	}
	return opts
}
