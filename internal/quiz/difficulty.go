package quiz

// Difficulty is the difficulty level attached to a question or requested
// for an exam.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	// DifficultyMixed selects questions of every level. Only valid on an
	// exam configuration, never on a question.
	DifficultyMixed Difficulty = "mixed"
)

// ParseDifficulty maps a string to a Difficulty, defaulting to medium for
// unknown input.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return Difficulty(s)
	}
	return DifficultyMedium
}

// Valid reports whether d is one of the known question difficulties.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}
