// Package bank provides the bundled question catalog, organized as
// categories of subcategories, each padded with generated filler
// questions to a target size.
package bank

import (
	"math/rand"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// targetPerSubcategory is the question count each subcategory is padded to.
const targetPerSubcategory = 50

// Category groups related subcategories under one subject.
type Category struct {
	ID            string
	Name          string
	Description   string
	Subcategories []Subcategory
}

// Subcategory holds the questions for one topic within a category.
type Subcategory struct {
	ID          string
	Name        string
	Description string
	Questions   []quiz.Question
}

// CategorySummary describes a category without its question bodies, for
// listing in setup flows.
type CategorySummary struct {
	ID            string
	Name          string
	Description   string
	Subcategories []SubcategorySummary
}

// SubcategorySummary carries a subcategory's metadata and question count.
type SubcategorySummary struct {
	ID            string
	Name          string
	Description   string
	QuestionCount int
}

// QuestionsByCategory returns a shuffled selection from the catalog.
// An empty subcategoryID selects across the whole category. Difficulty
// mixed (or empty) applies no filter. A limit <= 0 returns everything.
// Unknown IDs yield an empty slice.
func QuestionsByCategory(rng *rand.Rand, categoryID, subcategoryID string, difficulty quiz.Difficulty, limit int) []quiz.Question {
	cat := findCategory(categoryID)
	if cat == nil {
		return nil
	}

	var all []quiz.Question
	if subcategoryID != "" {
		for _, sub := range cat.Subcategories {
			if sub.ID == subcategoryID {
				all = sub.Questions
				break
			}
		}
	} else {
		for _, sub := range cat.Subcategories {
			all = append(all, sub.Questions...)
		}
	}

	all = quiz.FilterByDifficulty(all, difficulty)
	shuffled := quiz.Shuffle(rng, all)
	if limit > 0 && limit < len(shuffled) {
		return shuffled[:limit]
	}
	return shuffled
}

// Categories returns the summary tree of the full catalog.
func Categories() []CategorySummary {
	out := make([]CategorySummary, 0, len(catalog))
	for _, cat := range catalog {
		cs := CategorySummary{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
		}
		for _, sub := range cat.Subcategories {
			cs.Subcategories = append(cs.Subcategories, SubcategorySummary{
				ID:            sub.ID,
				Name:          sub.Name,
				Description:   sub.Description,
				QuestionCount: len(sub.Questions),
			})
		}
		out = append(out, cs)
	}
	return out
}

func findCategory(id string) *Category {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}
