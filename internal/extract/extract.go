// Package extract turns uploaded study-material files into plain text.
//
// Plain-text formats pass through as-is. PDF and word-processor formats
// have no real parser wired in; they resolve to a fixed substitute block
// standing in for true content extraction. A production build would swap
// the stub for a format-specific extraction tool.
package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extract reads r and returns its plain-text content. The file name is
// used only for format dispatch and error reporting; a read failure is
// wrapped with the name so batch callers can report it per file.
func Extract(name string, r io.Reader) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		// Drain the input so the caller's reader is fully consumed
		// even though the stub ignores the bytes.
		if _, err := io.Copy(io.Discard, r); err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		return assignmentPDFText, nil
	case ".doc", ".docx":
		if _, err := io.Copy(io.Discard, r); err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		return wordDocumentText, nil
	default:
		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		return string(b), nil
	}
}

// DetectLanguage guesses the dominant language of text from Unicode
// ranges. Falls back to English.
func DetectLanguage(text string) string {
	var han, kana, hangul, arabic, devanagari bool
	for _, r := range text {
		switch {
		case r >= 0x4E00 && r <= 0x9FFF:
			han = true
		case (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF):
			kana = true
		case r >= 0xAC00 && r <= 0xD7AF:
			hangul = true
		case r >= 0x0600 && r <= 0x06FF:
			arabic = true
		case r >= 0x0900 && r <= 0x097F:
			devanagari = true
		}
	}
	switch {
	case kana:
		return "ja"
	case han:
		return "zh"
	case hangul:
		return "ko"
	case arabic:
		return "ar"
	case devanagari:
		return "hi"
	}
	return "en"
}
