package bank

import (
	"math/rand"
	"testing"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

func TestCatalogPaddedToTarget(t *testing.T) {
	for _, cat := range catalog {
		if len(cat.Subcategories) == 0 {
			t.Errorf("category %s has no subcategories", cat.ID)
		}
		for _, sub := range cat.Subcategories {
			if got := len(sub.Questions); got != targetPerSubcategory {
				t.Errorf("category %s subcategory %s: %d questions, want %d", cat.ID, sub.ID, got, targetPerSubcategory)
			}
		}
	}
}

func TestCatalogQuestionsWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, cat := range catalog {
		for _, sub := range cat.Subcategories {
			for _, q := range sub.Questions {
				if seen[q.ID] {
					t.Errorf("duplicate question ID %s", q.ID)
				}
				seen[q.ID] = true
				if len(q.Options) != quiz.OptionCount {
					t.Errorf("%s: %d options, want %d", q.ID, len(q.Options), quiz.OptionCount)
				}
				if q.CorrectIndex() < 0 {
					t.Errorf("%s: correct answer %q not among options", q.ID, q.CorrectAnswer)
				}
				if !q.Difficulty.Valid() || q.Difficulty == quiz.DifficultyMixed {
					t.Errorf("%s: unexpected difficulty %q", q.ID, q.Difficulty)
				}
				if q.Category != cat.ID || q.Subcategory != sub.ID {
					t.Errorf("%s: labeled %s/%s, want %s/%s", q.ID, q.Category, q.Subcategory, cat.ID, sub.ID)
				}
			}
		}
	}
}

func TestQuestionsByCategory(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	got := QuestionsByCategory(rng, "dsa", "arrays", quiz.DifficultyMixed, 10)
	if len(got) != 10 {
		t.Fatalf("limit 10: got %d questions", len(got))
	}
	for _, q := range got {
		if q.Subcategory != "arrays" {
			t.Errorf("question %s from subcategory %s, want arrays", q.ID, q.Subcategory)
		}
	}

	whole := QuestionsByCategory(rng, "dsa", "", quiz.DifficultyMixed, 0)
	if want := 4 * targetPerSubcategory; len(whole) != want {
		t.Errorf("whole category: got %d questions, want %d", len(whole), want)
	}

	easy := QuestionsByCategory(rng, "algorithms", "sorting", quiz.DifficultyEasy, 0)
	for _, q := range easy {
		if q.Difficulty != quiz.DifficultyEasy {
			t.Errorf("difficulty filter leaked %s (%s)", q.ID, q.Difficulty)
		}
	}

	if got := QuestionsByCategory(rng, "nope", "", quiz.DifficultyMixed, 0); got != nil {
		t.Errorf("unknown category: got %d questions, want none", len(got))
	}
}

func TestCategoriesSummaries(t *testing.T) {
	cats := Categories()
	if len(cats) != 4 {
		t.Fatalf("got %d categories, want 4", len(cats))
	}
	for _, c := range cats {
		if len(c.Subcategories) != 4 {
			t.Errorf("category %s: %d subcategories, want 4", c.ID, len(c.Subcategories))
		}
		for _, s := range c.Subcategories {
			if s.QuestionCount != targetPerSubcategory {
				t.Errorf("%s/%s: count %d, want %d", c.ID, s.ID, s.QuestionCount, targetPerSubcategory)
			}
		}
	}
}
