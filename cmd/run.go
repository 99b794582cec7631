package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Rafi-Luffy/ManaQuiz/internal/app"
	"github.com/Rafi-Luffy/ManaQuiz/internal/progress"
	"github.com/Rafi-Luffy/ManaQuiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, restores the latest progress snapshot, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, tracker, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return app.Run(tracker, st.AttemptRepo(), st.SnapshotRepo(), rng)
}

// openTracker opens the store at the resolved DB path and loads the
// most recent progress snapshot into a fresh tracker. A corrupt
// snapshot is reported but does not prevent startup.
func openTracker(cmd *cobra.Command) (*store.Store, *progress.Tracker, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	tracker := progress.NewTracker()
	snap, err := st.SnapshotRepo().Latest(cmd.Context())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil && len(snap.Data.Progress) > 0 {
		if err := tracker.Import(snap.Data.Progress); err != nil {
			fmt.Fprintln(os.Stderr, "Stored progress could not be read, starting fresh:", err)
			tracker = progress.NewTracker()
		}
	}
	return st, tracker, nil
}

// saveSnapshot writes the tracker's current state as a new snapshot and
// prunes old ones.
func saveSnapshot(cmd *cobra.Command, st *store.Store, tracker *progress.Tracker) error {
	blob, err := tracker.Export()
	if err != nil {
		return fmt.Errorf("export progress: %w", err)
	}
	repo := st.SnapshotRepo()
	if err := repo.Save(cmd.Context(), &store.Snapshot{
		Timestamp: time.Now(),
		Data:      store.SnapshotData{Version: 1, Progress: blob},
	}); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return repo.Prune(cmd.Context(), 10)
}
