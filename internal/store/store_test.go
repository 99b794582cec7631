package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only meaningful against a file-based DB.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	blob := json.RawMessage(`{"version":1,"attempts":[]}`)
	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, Progress: blob},
	}))

	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, int64(42), snap.Sequence)
	assert.Equal(t, 1, snap.Data.Version)
	assert.NotEmpty(t, snap.Data.Progress, "progress blob lost in round trip")
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		}))
	}

	require.NoError(t, repo.Prune(ctx, 5))

	count, err := s.Client().Snapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), snap.Sequence)
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		}))
	}

	// Prune with keep=5 should be a no-op.
	require.NoError(t, repo.Prune(ctx, 5))

	count, err := s.Client().Snapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAttemptAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{AttemptID: "a1", ExamTitle: "Run 1", Category: "dsa", Difficulty: "easy", TotalQuestions: 10, CorrectAnswers: 7, Score: 70, TimeSpent: 300, Source: "sample"},
		{AttemptID: "a2", ExamTitle: "Run 2", Category: "cloud", Difficulty: "medium", TotalQuestions: 5, CorrectAnswers: 5, Score: 100, TimeSpent: 200, Source: "upload", FileName: "notes.txt"},
		{AttemptID: "a3", ExamTitle: "Run 3", Category: "dsa", Difficulty: "hard", TotalQuestions: 20, CorrectAnswers: 9, Score: 45, TimeSpent: 900, Source: "sample"},
	}
	for _, a := range attempts {
		require.NoError(t, repo.Append(ctx, a))
	}

	records, err := repo.List(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.Greater(t, records[i].Sequence, records[i-1].Sequence, "sequence must increase")
	}
	assert.Equal(t, "notes.txt", records[1].FileName)

	dsa, err := repo.List(ctx, QueryOpts{Category: "dsa"})
	require.NoError(t, err)
	assert.Len(t, dsa, 2)

	n, err := repo.Count(ctx, "cloud")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAttemptListLimitAndAfter(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, AttemptEventData{
			AttemptID: string(rune('a' + i)),
			ExamTitle: "Run",
			Category:  "dsa",
			Source:    "sample",
		}))
	}

	limited, err := repo.List(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	all, err := repo.List(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 5)

	later, err := repo.List(ctx, QueryOpts{After: all[2].Sequence})
	require.NoError(t, err)
	assert.Len(t, later, 2)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		require.NoError(t, err)
		if i > 0 {
			assert.Equal(t, prev+1, seq)
		}
		prev = seq
	}
}
