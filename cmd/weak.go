package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smehra/sayright/internal/ui/theme"
)

var weakCmd = &cobra.Command{
	Use:   "weak <learner>",
	Short: "Show the learner's weak letters, phonemes, and words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, s, err := openEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer s.Close()

		spots, err := eng.WeakSpots(context.Background(), args[0])
		if err != nil {
			return err
		}

		if len(spots.Letters) == 0 && len(spots.Phonemes) == 0 && len(spots.Words) == 0 {
			fmt.Println("Nothing weak on record. Nice.")
			return nil
		}

		if len(spots.Letters) > 0 {
			fmt.Printf("Letters:   %s\n", theme.Highlight.Render(strings.Join(spots.Letters, " ")))
		}
		if len(spots.Phonemes) > 0 {
			fmt.Printf("Phonemes:  %s\n", theme.Highlight.Render(strings.Join(spots.Phonemes, " ")))
		}

		if len(spots.Words) > 0 {
			fmt.Println()
			fmt.Printf("%-20s  %-12s  %-6s  %s\n", "Word", "Level", "Avg", "Difficulty")
			fmt.Println(strings.Repeat("─", 52))
			for _, w := range spots.Words {
				fmt.Printf("%-20s  %-12s  %-6.1f  %.1f\n",
					w.Word, theme.Level(string(w.Level)), w.AvgScore, w.Difficulty)
			}
		}
		return nil
	},
}
