package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smehra/sayright/internal/ui/theme"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery <learner> [word]",
	Short: "Show per-word mastery records",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, s, err := openEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		if len(args) == 2 {
			m, err := eng.Mastery(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s\n", theme.Title.Render(fmt.Sprintf("%q — %s", m.Word, m.LearnerID)))
			fmt.Fprintf(&b, "Level:        %s\n", theme.Level(string(m.Level)))
			fmt.Fprintf(&b, "Average:      %.1f over %d observations (%d successes)\n", m.AvgScore, m.Observations, m.Successes)
			fmt.Fprintf(&b, "Difficulty:   %.1f (started at %.1f)\n", m.Difficulty, m.InitialDifficulty)
			fmt.Fprintf(&b, "Improvement:  %.1f%%", m.ImprovementRate)
			if m.MasteredAt != nil {
				fmt.Fprintf(&b, "\nMastered:     %s", m.MasteredAt.Local().Format("2006-01-02"))
			}
			fmt.Println(theme.Card.Render(b.String()))

			if len(m.History) > 0 {
				fmt.Println(theme.Hint.Render("recent scores:"))
				for _, o := range m.History {
					fmt.Printf("  %s  %-6.1f  %s\n",
						o.Timestamp.Local().Format("2006-01-02 15:04"), o.Score, o.DrillID)
				}
			}
			return nil
		}

		words, err := eng.ListMastery(ctx, args[0])
		if err != nil {
			return err
		}
		if len(words) == 0 {
			fmt.Println("No words tracked.")
			return nil
		}

		fmt.Printf("%-20s  %-12s  %-6s  %-4s  %-5s  %s\n",
			"Word", "Level", "Avg", "Obs", "Wins", "Improvement")
		fmt.Println(strings.Repeat("─", 66))
		for _, m := range words {
			fmt.Printf("%-20s  %-12s  %-6.1f  %-4d  %-5d  %+.1f%%\n",
				m.Word, theme.Level(string(m.Level)), m.AvgScore, m.Observations, m.Successes, m.ImprovementRate)
		}
		return nil
	},
}
