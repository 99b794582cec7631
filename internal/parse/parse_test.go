package parse

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

const twoBlocks = `
1. Which of the following is a stack operation?
   a) push
   b) random
   c) sort
   d) merge
   Answer: c

2. Which keyword declares a constant?
   a) var
   b) const
   c) let
   d) static
   Answer: b
`

func TestParseSingleBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	text := "1. Which of the following is a stack operation? a) push b) random c) sort d) merge Answer: c"

	qs := Parse(text, "quiz.txt", rng)
	if len(qs) != 1 {
		t.Fatalf("Parse returned %d questions, want 1", len(qs))
	}
	q := qs[0]
	if q.Text != "Which of the following is a stack operation?" {
		t.Errorf("question text = %q", q.Text)
	}
	if len(q.Options) != quiz.OptionCount {
		t.Fatalf("got %d options, want %d", len(q.Options), quiz.OptionCount)
	}
	want := []string{"push", "random", "sort", "merge"}
	for i, opt := range want {
		if q.Options[i] != opt {
			t.Errorf("option %d = %q, want %q", i, q.Options[i], opt)
		}
	}
	if q.CorrectAnswer != "sort" {
		t.Errorf("correct answer = %q, want %q (letter c is the third option)", q.CorrectAnswer, "sort")
	}
	if q.ID == "" {
		t.Error("question has no ID")
	}
	if !strings.Contains(q.Explanation, "C) sort") {
		t.Errorf("explanation = %q, want the answer letter and text", q.Explanation)
	}
	if !q.Difficulty.Valid() {
		t.Errorf("difficulty = %q, not a valid level", q.Difficulty)
	}
}

func TestParseMultilineBlocks(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	qs := Parse(twoBlocks, "quiz.txt", rng)
	if len(qs) != 2 {
		t.Fatalf("Parse returned %d questions, want 2", len(qs))
	}
	if qs[1].CorrectAnswer != "const" {
		t.Errorf("second question correct answer = %q, want %q", qs[1].CorrectAnswer, "const")
	}
}

func TestParseUniqueIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	qs := Parse(twoBlocks, "quiz.txt", rng)
	if len(qs) == 2 && qs[0].ID == qs[1].ID {
		t.Errorf("both questions share ID %q", qs[0].ID)
	}
}

func TestParseFallbackOnNoMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	qs := Parse("nothing resembling a question here", "python_notes.txt", rng)
	if len(qs) == 0 {
		t.Fatal("expected fallback questions, got none")
	}
	if len(qs) > fallbackCap {
		t.Errorf("fallback returned %d questions, cap is %d", len(qs), fallbackCap)
	}
	for _, q := range qs {
		if q.Category != "Python Programming" {
			t.Errorf("question %q category = %q, want filename-derived %q", q.Text, q.Category, "Python Programming")
		}
		if len(q.Options) != quiz.OptionCount {
			t.Errorf("fallback question %q has %d options", q.Text, len(q.Options))
		}
	}
}

func TestFallbackFreshIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := Fallback("notes.txt", rng)
	b := Fallback("notes.txt", rng)
	if a[0].ID == "" {
		t.Fatal("fallback question has no ID")
	}
	ids := make(map[string]bool)
	for _, q := range append(a, b...) {
		if ids[q.ID] {
			t.Fatalf("duplicate ID %q across Fallback calls", q.ID)
		}
		ids[q.ID] = true
	}
}

func TestDedup(t *testing.T) {
	qs := []quiz.Question{
		{ID: "1", Text: "What is a stack?"},
		{ID: "2", Text: "  what is a STACK?  "},
		{ID: "3", Text: "What is a queue?"},
	}

	got := Dedup(qs)
	if len(got) != 2 {
		t.Fatalf("Dedup returned %d questions, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("Dedup kept IDs %s, %s; want first occurrences 1, 3", got[0].ID, got[1].ID)
	}

	again := Dedup(got)
	if len(again) != len(got) {
		t.Errorf("Dedup of its own output changed length: %d -> %d", len(got), len(again))
	}
}
