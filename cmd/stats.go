package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s := tracker.Stats
		if s.TotalAttempts == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("Attempts:           %d\n", s.TotalAttempts)
		fmt.Printf("Questions answered: %d\n", s.TotalQuestionsAnswered)
		fmt.Printf("Average score:      %.1f%%\n", s.AverageScore)
		fmt.Printf("Best score:         %.1f%%\n", s.BestScore)
		fmt.Printf("Time studied:       %dm\n", s.TotalTimeSpent/60)
		fmt.Printf("Current streak:     %d days (longest %d)\n",
			s.StudyStreak.CurrentStreak, s.StudyStreak.LongestStreak)
		if s.FavoriteCategory != "" {
			fmt.Printf("Favorite category:  %s\n", s.FavoriteCategory)
		}

		if weak := tracker.WeakAreas(); len(weak) > 0 {
			fmt.Printf("Weak areas:         %s\n", strings.Join(weak, ", "))
		}
		for _, rec := range tracker.Recommendations() {
			fmt.Println("  -", rec)
		}
		return nil
	},
}
