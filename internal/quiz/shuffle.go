package quiz

import "math/rand"

// Shuffle returns a shuffled copy of qs using the supplied random source.
// The input slice is never mutated. Callers wanting reproducible order
// pass a seeded *rand.Rand.
func Shuffle(rng *rand.Rand, qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// FilterByDifficulty returns the subset of qs matching d. DifficultyMixed
// returns the input unchanged.
func FilterByDifficulty(qs []Question, d Difficulty) []Question {
	if d == DifficultyMixed || d == "" {
		return qs
	}
	var out []Question
	for _, q := range qs {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}
