package ingest

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const mcqText = `
1. Which keyword declares a constant?
   a) var
   b) const
   c) let
   d) static
   Answer: b
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "notes.txt", mcqText)

	res := ProcessFiles(rand.New(rand.NewSource(1)), []string{good})
	if len(res.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", res.Failures)
	}
	if len(res.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(res.Questions))
	}
	if res.Questions[0].CorrectAnswer != "const" {
		t.Errorf("correct answer = %q, want %q", res.Questions[0].CorrectAnswer, "const")
	}
}

func TestProcessFilesIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "notes.txt", mcqText)
	missing := filepath.Join(dir, "does-not-exist.txt")

	res := ProcessFiles(rand.New(rand.NewSource(1)), []string{missing, good})
	if len(res.Failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(res.Failures))
	}
	if !strings.Contains(res.Failures[0].Error(), "does-not-exist.txt") {
		t.Errorf("failure %q does not name the bad file", res.Failures[0].Error())
	}
	if len(res.Questions) != 1 {
		t.Errorf("good file contributed %d questions, want 1", len(res.Questions))
	}
}

func TestProcessFilesDedupsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", mcqText)
	b := writeFile(t, dir, "b.txt", mcqText)

	res := ProcessFiles(rand.New(rand.NewSource(1)), []string{a, b})
	if len(res.Questions) != 1 {
		t.Fatalf("duplicate question survived: got %d questions, want 1", len(res.Questions))
	}
}

func TestProcessFilesFallbackForUnparseableText(t *testing.T) {
	dir := t.TempDir()
	prose := writeFile(t, dir, "python_notes.txt", "just prose, no questions")

	res := ProcessFiles(rand.New(rand.NewSource(1)), []string{prose})
	if len(res.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", res.Failures)
	}
	if len(res.Questions) == 0 {
		t.Fatal("expected fallback questions for unparseable text")
	}
	for _, q := range res.Questions {
		if q.Category != "Python Programming" {
			t.Errorf("fallback category = %q, want filename-derived %q", q.Category, "Python Programming")
		}
	}
}
