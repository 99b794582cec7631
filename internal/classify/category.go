package classify

import "strings"

// subject pairs a category label with its keyword list. Subjects are
// scored in declaration order; ties keep the earlier subject because the
// running maximum only updates on a strictly higher score.
type subject struct {
	name     string
	keywords []string
}

var subjects = []subject{
	{"Computer Science", []string{
		"algorithm", "data structure", "programming", "software", "computer", "binary",
		"loop", "function", "variable", "array", "linked list", "tree", "graph",
	}},
	{"Mathematics", []string{
		"equation", "derivative", "integral", "matrix", "probability", "statistics",
		"theorem", "proof", "calculus", "algebra", "geometry", "trigonometry",
	}},
	{"Physics", []string{
		"force", "energy", "motion", "velocity", "acceleration", "momentum",
		"wave", "particle", "quantum", "electromagnetic", "thermodynamics",
	}},
	{"Chemistry", []string{
		"molecule", "atom", "element", "compound", "reaction", "bond",
		"periodic table", "organic", "inorganic", "solution", "acid", "base",
	}},
	{"Biology", []string{
		"cell", "organism", "dna", "protein", "gene", "evolution",
		"ecosystem", "photosynthesis", "metabolism", "reproduction",
	}},
	{"Engineering", []string{
		"circuit", "voltage", "current", "resistance", "mechanical", "electrical",
		"design", "material", "stress", "strain", "manufacturing",
	}},
	{"Business", []string{
		"management", "marketing", "finance", "accounting", "economics",
		"strategy", "organization", "leadership", "profit", "revenue",
	}},
	{"Data Science", []string{
		"machine learning", "artificial intelligence", "neural network", "dataset",
		"regression", "classification", "clustering", "feature", "model",
	}},
}

// Category classifies a question into a subject by counting keyword
// occurrences in the lowercased filename plus question text. When no
// subject scores, filename hints pick a document-type label, defaulting
// to General.
func Category(filename, questionText string) string {
	name := strings.ToLower(filename)
	combined := name + " " + strings.ToLower(questionText)

	best := "General"
	maxScore := 0
	for _, s := range subjects {
		score := 0
		for _, kw := range s.keywords {
			if strings.Contains(combined, kw) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = s.name
		}
	}

	if maxScore == 0 {
		switch {
		case strings.Contains(name, "assignment") || strings.Contains(name, "homework"):
			return "Assignment"
		case strings.Contains(name, "exam") || strings.Contains(name, "test"):
			return "Exam Preparation"
		case strings.Contains(name, "lecture") || strings.Contains(name, "notes"):
			return "Lecture Notes"
		}
	}

	return best
}
