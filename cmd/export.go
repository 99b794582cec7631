package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		blob, err := tracker.Export()
		if err != nil {
			return fmt.Errorf("export progress: %w", err)
		}
		if exportOut == "" {
			_, err = os.Stdout.Write(append(blob, '\n'))
			return err
		}
		if err := os.WriteFile(exportOut, blob, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Progress written to", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to file instead of stdout")
}
