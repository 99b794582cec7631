// Package classify assigns difficulty and category labels to extracted
// questions using keyword scoring. Both classifiers are pure functions of
// their text input.
package classify

import (
	"strings"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// Cue lists for difficulty scoring. Easy cues are recall/definition
// prompts, medium cues understanding/application, hard cues
// analysis/synthesis/evaluation.
var (
	easyCues = []string{
		"what is", "define", "list", "name", "identify", "state", "mention",
		"true or false", "fill in the blank", "choose the correct", "select",
		"which of the following", "basic", "simple", "definition", "which of",
	}

	mediumCues = []string{
		"explain", "describe", "discuss", "illustrate", "demonstrate",
		"apply", "calculate", "implement", "use", "show", "interpret",
		"summarize", "classify", "categorize", "organize", "outline",
		"compare", "contrast",
	}

	hardCues = []string{
		"analyze", "evaluate", "compare and contrast", "justify", "critique",
		"design", "create", "synthesize", "formulate", "construct", "develop",
		"assess", "argue", "defend", "propose", "solve", "derive", "prove",
		"complex", "advanced", "sophisticated", "intricate",
	}
)

// longQuestionLen is the character count above which a question earns a
// complexity point.
const longQuestionLen = 200

// Difficulty scores questionText against the cue lists and returns the
// resulting level. Scoring: each easy cue hit counts -2, medium +1, hard
// +2; one extra point each for more than two sentence terminators, for
// digits or formula symbols, and for length above longQuestionLen.
// Score <= -2 is easy, >= 3 is hard, anything between is medium.
func Difficulty(questionText string) quiz.Difficulty {
	lower := strings.ToLower(questionText)

	score := -2*countCues(lower, easyCues) +
		countCues(lower, mediumCues) +
		2*countCues(lower, hardCues)

	if strings.Count(lower, ".")+strings.Count(lower, "!")+strings.Count(lower, "?") > 2 {
		score++
	}
	if strings.ContainsAny(questionText, "0123456789") || strings.ContainsAny(questionText, "=+-*/()^") {
		score++
	}
	if len(questionText) > longQuestionLen {
		score++
	}

	switch {
	case score <= -2:
		return quiz.DifficultyEasy
	case score >= 3:
		return quiz.DifficultyHard
	}
	return quiz.DifficultyMedium
}

// countCues counts how many cues occur in lower, each cue at most once.
// Matches respect word boundaries so "complex" does not fire inside
// "complexity".
func countCues(lower string, cues []string) int {
	n := 0
	for _, cue := range cues {
		if containsCue(lower, cue) {
			n++
		}
	}
	return n
}

func containsCue(lower, cue string) bool {
	for start := 0; start <= len(lower)-len(cue); {
		i := strings.Index(lower[start:], cue)
		if i < 0 {
			return false
		}
		i += start
		before := i == 0 || !isWordByte(lower[i-1])
		after := i+len(cue) == len(lower) || !isWordByte(lower[i+len(cue)])
		if before && after {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
