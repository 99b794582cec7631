package classify

import (
	"testing"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

func TestDifficulty(t *testing.T) {
	tests := []struct {
		name string
		text string
		want quiz.Difficulty
	}{
		{
			name: "recall prompt",
			text: "Define a stack.",
			want: quiz.DifficultyEasy,
		},
		{
			name: "easy cue with a near-miss hard cue",
			text: "What is the time complexity of X?",
			want: quiz.DifficultyEasy,
		},
		{
			name: "application prompt",
			text: "Explain how binary search works.",
			want: quiz.DifficultyMedium,
		},
		{
			name: "analysis prompt",
			text: "Analyze and design an optimal algorithm to prove the bound.",
			want: quiz.DifficultyHard,
		},
		{
			name: "no cues at all",
			text: "Pick one option below.",
			want: quiz.DifficultyMedium,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Difficulty(tt.text); got != tt.want {
				t.Errorf("Difficulty(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDifficultyDeterministic(t *testing.T) {
	text := "Explain how binary search works."
	first := Difficulty(text)
	for i := 0; i < 5; i++ {
		if got := Difficulty(text); got != first {
			t.Fatalf("Difficulty changed across calls: %q then %q", first, got)
		}
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		want     string
	}{
		{
			name:     "keyword majority",
			filename: "lecture1.txt",
			text:     "What force causes acceleration of a particle?",
			want:     "Physics",
		},
		{
			name:     "tie keeps earlier subject",
			filename: "doc.txt",
			text:     "The binary theorem",
			want:     "Computer Science",
		},
		{
			name:     "filename hint when nothing scores",
			filename: "midterm_exam.pdf",
			text:     "Good luck",
			want:     "Exam Preparation",
		},
		{
			name:     "default",
			filename: "doc.txt",
			text:     "hello world",
			want:     "General",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Category(tt.filename, tt.text); got != tt.want {
				t.Errorf("Category(%q, %q) = %q, want %q", tt.filename, tt.text, got, tt.want)
			}
		})
	}
}

func TestCategoryUsesFilenameKeywords(t *testing.T) {
	// The filename participates in keyword scoring, not just the hints.
	got := Category("calculus_problems.txt", "Evaluate the expression.")
	if got != "Mathematics" {
		t.Errorf("Category = %q, want %q", got, "Mathematics")
	}
}
