package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Rafi-Luffy/ManaQuiz/internal/ingest"
	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Extract questions from study files without starting a quiz",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		res := ingest.ProcessFiles(rng, args)

		for _, f := range res.Failures {
			fmt.Fprintln(os.Stderr, "skipped:", f.Error())
		}

		if parseJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res.Questions)
		}

		for i, q := range res.Questions {
			fmt.Printf("%d. %s [%s/%s]\n", i+1, q.Text, q.Category, q.Difficulty)
			labels := []string{"a", "b", "c", "d"}
			for j, opt := range q.Options {
				marker := " "
				if opt == q.CorrectAnswer {
					marker = "*"
				}
				fmt.Printf("  %s %s) %s\n", marker, labels[j], opt)
			}
			fmt.Println()
		}
		fmt.Printf("%d questions from %d files (%d failed)\n",
			len(res.Questions), len(args), len(res.Failures))
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Emit questions as JSON")
}
