package parse

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// fallbackCap bounds the size of a fallback set.
const fallbackCap = 10

// fallbackPool is the canned question set substituted when extraction
// yields nothing. IDs are assigned per Fallback call.
var fallbackPool = []quiz.Question{
	{
		Text: "What is the primary purpose of object-oriented programming?",
		Options: []string{
			"To write shorter code",
			"To organize code into reusable objects and classes",
			"To make programs run faster",
			"To reduce memory usage",
		},
		CorrectAnswer: "To organize code into reusable objects and classes",
		Difficulty:    quiz.DifficultyMedium,
		Category:      "Programming Concepts",
		Explanation:   "Object-oriented programming helps organize code into reusable, maintainable structures using objects and classes.",
	},
	{
		Text:          "Which data structure follows the Last In First Out (LIFO) principle?",
		Options:       []string{"Queue", "Stack", "Array", "Linked List"},
		CorrectAnswer: "Stack",
		Difficulty:    quiz.DifficultyEasy,
		Category:      "Data Structures",
		Explanation:   "A stack follows LIFO principle where the last element added is the first one to be removed.",
	},
	{
		Text:          "What is the time complexity of binary search in a sorted array?",
		Options:       []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
		CorrectAnswer: "O(log n)",
		Difficulty:    quiz.DifficultyMedium,
		Category:      "Algorithms",
		Explanation:   "Binary search divides the search space in half with each comparison, resulting in O(log n) time complexity.",
	},
	{
		Text: "In database normalization, what does the First Normal Form (1NF) eliminate?",
		Options: []string{
			"Partial dependencies",
			"Transitive dependencies",
			"Repeating groups and ensures atomic values",
			"All redundancy",
		},
		CorrectAnswer: "Repeating groups and ensures atomic values",
		Difficulty:    quiz.DifficultyHard,
		Category:      "Database Management",
		Explanation:   "1NF ensures that each column contains atomic values and eliminates repeating groups.",
	},
	{
		Text: "What is the main advantage of using recursion?",
		Options: []string{
			"It uses less memory",
			"It's faster than iteration",
			"It provides elegant solutions for problems with recursive structure",
			"It's easier to debug",
		},
		CorrectAnswer: "It provides elegant solutions for problems with recursive structure",
		Difficulty:    quiz.DifficultyMedium,
		Category:      "Programming Concepts",
		Explanation:   "Recursion is particularly useful for problems that have a recursive structure, making the solution more intuitive and elegant.",
	},
	{
		Text: "What is the difference between TCP and UDP?",
		Options: []string{
			"TCP is faster, UDP is slower",
			"TCP is reliable, UDP is unreliable but faster",
			"UDP is reliable, TCP is unreliable",
			"No difference",
		},
		CorrectAnswer: "TCP is reliable, UDP is unreliable but faster",
		Difficulty:    quiz.DifficultyMedium,
		Category:      "Computer Networks",
		Explanation:   "TCP provides reliable, ordered delivery with error checking, while UDP is connectionless and faster but unreliable.",
	},
	{
		Text: "What is a closure in programming?",
		Options: []string{
			"A way to close programs",
			"A function that has access to variables from its outer scope",
			"A type of loop",
			"A database operation",
		},
		CorrectAnswer: "A function that has access to variables from its outer scope",
		Difficulty:    quiz.DifficultyHard,
		Category:      "Programming Concepts",
		Explanation:   "A closure is a function that retains access to variables from its lexical scope even when executed outside that scope.",
	},
	{
		Text: "What is the purpose of a hash function?",
		Options: []string{
			"To encrypt data",
			"To map data to fixed-size values",
			"To sort data",
			"To compress files",
		},
		CorrectAnswer: "To map data to fixed-size values",
		Difficulty:    quiz.DifficultyMedium,
		Category:      "Data Structures",
		Explanation:   "Hash functions map input data to fixed-size values, commonly used in hash tables for fast lookups.",
	},
}

// filename substrings that override the pool item's own category.
var filenameCategories = []struct {
	substr   string
	category string
}{
	{"python", "Python Programming"},
	{"java", "Java Programming"},
	{"data", "Data Structures"},
	{"algorithm", "Algorithms"},
	{"network", "Computer Networks"},
	{"database", "Database Management"},
}

// Fallback returns a shuffled subset of the canned pool, capped at ten
// questions, with fresh IDs and a category inferred from the filename
// where a known substring matches.
func Fallback(filename string, rng *rand.Rand) []quiz.Question {
	selected := quiz.Shuffle(rng, fallbackPool)
	if len(selected) > fallbackCap {
		selected = selected[:fallbackCap]
	}

	name := strings.ToLower(filename)
	category := ""
	for _, fc := range filenameCategories {
		if strings.Contains(name, fc.substr) {
			category = fc.category
			break
		}
	}

	out := make([]quiz.Question, len(selected))
	for i, q := range selected {
		q.ID = uuid.NewString()
		if category != "" {
			q.Category = category
		}
		out[i] = q
	}
	return out
}
