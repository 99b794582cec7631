package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import progress data from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blob, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := tracker.Import(blob); err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}
		if err := saveSnapshot(cmd, st, tracker); err != nil {
			return err
		}
		fmt.Printf("Imported %d attempts from %s\n", len(tracker.Attempts), args[0])
		return nil
	},
}
