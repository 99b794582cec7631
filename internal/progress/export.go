package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// exportVersion is the current progress blob schema version.
const exportVersion = 1

// ErrInvalidImport reports a progress document that failed parsing or
// schema validation. The tracker is left untouched.
var ErrInvalidImport = errors.New("invalid progress document")

// exportDocument is the on-disk and exported shape of the full tracker
// state. Every field except version and exportedAt is optional on
// import; missing fields take their defaults.
type exportDocument struct {
	Version          int                `json:"version"`
	Attempts         []Attempt          `json:"attempts"`
	CategoryProgress []CategoryProgress `json:"categoryProgress"`
	LearningGoals    []LearningGoal     `json:"learningGoals"`
	Achievements     []Achievement      `json:"achievements"`
	UserStats        *UserStats         `json:"userStats"`
	ExportedAt       time.Time          `json:"exportedAt"`
}

// Export serializes the full tracker state as a versioned, indented
// JSON document with an export timestamp. Nil slices are written as
// empty arrays so the output always satisfies the import schema.
func (t *Tracker) Export() ([]byte, error) {
	doc := exportDocument{
		Version:          exportVersion,
		Attempts:         nonNil(t.Attempts),
		CategoryProgress: nonNil(t.CategoryProgress),
		LearningGoals:    nonNil(t.LearningGoals),
		Achievements:     nonNil(t.Achievements),
		UserStats:        &t.Stats,
		ExportedAt:       t.now(),
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Import replaces the tracker state wholesale from an exported
// document. The document is schema-validated first; on any failure the
// existing state is left unchanged. Missing fields take defaults: nil
// achievements restore the built-in set, nil stats reset to zero.
func (t *Tracker) Import(data []byte) error {
	if err := validateExport(data); err != nil {
		return err
	}

	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	t.Attempts = doc.Attempts
	t.CategoryProgress = doc.CategoryProgress
	t.LearningGoals = doc.LearningGoals
	if doc.Achievements != nil {
		t.Achievements = doc.Achievements
	} else {
		t.Achievements = defaultAchievements()
	}
	if doc.UserStats != nil {
		t.Stats = *doc.UserStats
	} else {
		t.Stats = UserStats{}
	}
	return nil
}
