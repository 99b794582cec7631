package quiz

import (
	"fmt"
	"math/rand"
	"testing"
)

func pool(n int, d Difficulty) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{ID: fmt.Sprintf("%s-%d", d, i), Difficulty: d}
	}
	return qs
}

func TestShuffleIsPermutation(t *testing.T) {
	in := pool(20, DifficultyMedium)
	rng := rand.New(rand.NewSource(42))

	out := Shuffle(rng, in)
	if len(out) != len(in) {
		t.Fatalf("Shuffle changed length: %d -> %d", len(in), len(out))
	}

	seen := make(map[string]int)
	for _, q := range out {
		seen[q.ID]++
	}
	for _, q := range in {
		if seen[q.ID] != 1 {
			t.Errorf("question %s appears %d times in output", q.ID, seen[q.ID])
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	in := pool(10, DifficultyMedium)
	before := make([]Question, len(in))
	copy(before, in)

	Shuffle(rand.New(rand.NewSource(1)), in)
	for i := range in {
		if in[i].ID != before[i].ID {
			t.Fatalf("input mutated at index %d", i)
		}
	}
}

func TestFilterByDifficulty(t *testing.T) {
	qs := append(pool(3, DifficultyEasy), pool(2, DifficultyHard)...)

	easy := FilterByDifficulty(qs, DifficultyEasy)
	if len(easy) != 3 {
		t.Errorf("easy filter kept %d questions, want 3", len(easy))
	}
	for _, q := range easy {
		if q.Difficulty != DifficultyEasy {
			t.Errorf("question %s leaked through easy filter", q.ID)
		}
	}

	if got := FilterByDifficulty(qs, DifficultyMixed); len(got) != len(qs) {
		t.Errorf("mixed filter kept %d questions, want all %d", len(got), len(qs))
	}
	if got := FilterByDifficulty(qs, ""); len(got) != len(qs) {
		t.Errorf("empty filter kept %d questions, want all %d", len(got), len(qs))
	}
	if got := FilterByDifficulty(qs, DifficultyMedium); got != nil {
		t.Errorf("medium filter returned %d questions, want none", len(got))
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"medium", DifficultyMedium},
		{"hard", DifficultyHard},
		{"mixed", DifficultyMixed},
		{"nightmare", DifficultyMedium},
		{"", DifficultyMedium},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCorrectIndex(t *testing.T) {
	q := Question{
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "c",
	}
	if got := q.CorrectIndex(); got != 2 {
		t.Errorf("CorrectIndex = %d, want 2", got)
	}

	q.CorrectAnswer = "missing"
	if got := q.CorrectIndex(); got != -1 {
		t.Errorf("CorrectIndex on malformed question = %d, want -1", got)
	}
}
