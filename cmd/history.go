package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smehra/sayright/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history <learner>",
	Short: "List the learner's recent attempts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		eng, s, err := openEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := eng.RecentAttempts(context.Background(), args[0], limit)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-20s  %-3s  %-6s  %s\n",
			"Timestamp", "Unit", "#", "Score", "Result")
		fmt.Println(strings.Repeat("─", 62))
		for _, a := range attempts {
			result := theme.Fail.Render("✗")
			if a.Passed {
				result = theme.Pass.Render("✓")
			}
			fmt.Printf("%-19s  %-20s  %-3d  %-6.1f  %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				a.UnitID, a.AttemptNumber, a.OverallScore, result)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum attempts to show")
}
