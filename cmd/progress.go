package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smehra/sayright/internal/ui/theme"
)

var progressCmd = &cobra.Command{
	Use:   "progress <learner> [unit]",
	Short: "Show per-unit pronunciation progress",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, s, err := openEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		if len(args) == 2 {
			p, err := eng.Progress(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			status := theme.Fail.Render("not passed")
			if p.Passed {
				status = theme.Pass.Render("passed " + p.PassedAt.Local().Format("2006-01-02"))
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s\n", theme.Title.Render(fmt.Sprintf("%s / %s", p.LearnerID, p.UnitID)))
			fmt.Fprintf(&b, "Attempts:  %d\n", p.Attempts)
			fmt.Fprintf(&b, "Best:      %.1f   Last: %.1f   Avg: %.1f\n", p.BestScore, p.LastScore, p.AvgScore)
			fmt.Fprintf(&b, "Status:    %s\n", status)
			if len(p.WeakLetters) > 0 {
				fmt.Fprintf(&b, "Letters:   %s\n", theme.Highlight.Render(strings.Join(p.WeakLetters, " ")))
			}
			if len(p.WeakPhonemes) > 0 {
				fmt.Fprintf(&b, "Phonemes:  %s", theme.Highlight.Render(strings.Join(p.WeakPhonemes, " ")))
			}
			fmt.Println(theme.Card.Render(strings.TrimRight(b.String(), "\n")))
			return nil
		}

		records, err := eng.ListProgress(ctx, args[0])
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No progress recorded.")
			return nil
		}

		fmt.Printf("%-20s  %-8s  %-6s  %-6s  %-6s  %s\n",
			"Unit", "Attempts", "Best", "Last", "Avg", "Status")
		fmt.Println(strings.Repeat("─", 64))
		for _, p := range records {
			status := "—"
			if p.Passed {
				status = theme.Pass.Render("passed")
			}
			fmt.Printf("%-20s  %-8d  %-6.1f  %-6.1f  %-6.1f  %s\n",
				p.UnitID, p.Attempts, p.BestScore, p.LastScore, p.AvgScore, status)
		}
		return nil
	},
}
