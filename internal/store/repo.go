package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	Category string    // filter by category ("" = all)
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
}

// SnapshotData captures the full progress tracker state at a point in
// time. The Progress blob is the tracker's own versioned export
// document, stored opaquely so the store needs no knowledge of its
// shape.
type SnapshotData struct {
	Version  int             `json:"version"`
	Progress json.RawMessage `json:"progress"`
}

// Snapshot represents a point-in-time capture of progress state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one completed exam run for the append-only
// attempt log.
type AttemptEventData struct {
	AttemptID      string
	ExamTitle      string
	Category       string
	Subcategory    string
	Difficulty     string
	TotalQuestions int
	CorrectAnswers int
	Score          float64
	TimeSpent      int
	Source         string
	FileName       string
}

// AttemptRecord is a stored attempt event with its log position.
type AttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// AttemptRepo provides append and query access to the attempt log.
// Events are immutable once appended.
type AttemptRepo interface {
	// Append records a completed attempt.
	Append(ctx context.Context, data AttemptEventData) error

	// List returns attempts in sequence order, oldest first.
	List(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// Count returns the number of stored attempts, optionally limited
	// to one category.
	Count(ctx context.Context, category string) (int, error)
}
