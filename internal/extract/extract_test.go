package extract

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestExtractPlainTextPassThrough(t *testing.T) {
	const content = "1. What is Go? a) x b) y c) z d) w Answer: a"
	got, err := Extract("notes.txt", strings.NewReader(content))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != content {
		t.Errorf("Extract changed plain text: %q", got)
	}
}

func TestExtractUnknownExtensionPassThrough(t *testing.T) {
	got, err := Extract("data.xyz", strings.NewReader("raw bytes"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "raw bytes" {
		t.Errorf("unknown extension should pass through, got %q", got)
	}
}

func TestExtractPDFSubstitute(t *testing.T) {
	got, err := Extract("Assignment.PDF", strings.NewReader("%PDF-1.4 binary junk"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != assignmentPDFText {
		t.Error("PDF input did not resolve to the substitute block")
	}
	if !strings.Contains(got, "Answer: b") {
		t.Error("substitute block carries no parseable answer lines")
	}
}

func TestExtractWordSubstitute(t *testing.T) {
	for _, name := range []string{"report.doc", "report.docx"} {
		got, err := Extract(name, strings.NewReader("junk"))
		if err != nil {
			t.Fatalf("Extract(%s): %v", name, err)
		}
		if got != wordDocumentText {
			t.Errorf("Extract(%s) did not resolve to the substitute block", name)
		}
	}
}

func TestExtractReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Extract("notes.txt", iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Fatalf("Extract error = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "notes.txt") {
		t.Errorf("error %q does not name the file", err)
	}

	_, err = Extract("doc.pdf", iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Fatalf("PDF read error = %v, want wrapped boom", err)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"What is a closure?", "en"},
		{"オブジェクト指向とは何ですか", "ja"},
		{"什么是闭包", "zh"},
		{"클로저란 무엇인가", "ko"},
		{"ما هو الإغلاق", "ar"},
		{"क्लोजर क्या है", "hi"},
		{"", "en"},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.text); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
