package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all progress data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker.Reset()
		if err := saveSnapshot(cmd, st, tracker); err != nil {
			return err
		}
		fmt.Println("Progress reset. The attempt log is kept for auditing.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the reset")
}
