package cmd

import (
	"fmt"
	"os"

	"github.com/Rafi-Luffy/ManaQuiz/internal/report"
	"github.com/Rafi-Luffy/ManaQuiz/internal/store"
	"github.com/spf13/cobra"
)

var (
	reportOut      string
	reportCategory string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the attempt history as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.AttemptRepo().List(cmd.Context(), store.QueryOpts{
			Category: reportCategory,
		})
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		out := os.Stdout
		if reportOut != "" {
			f, err := os.Create(reportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		if err := report.WriteHistory(out, records); err != nil {
			return err
		}
		if reportOut != "" {
			fmt.Fprintf(os.Stderr, "%d attempts written to %s\n", len(records), reportOut)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "Write to file instead of stdout")
	reportCmd.Flags().StringVar(&reportCategory, "category", "", "Only include attempts in this category")
}
