package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smehra/sayright/internal/ui/theme"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence <learner>",
	Short: "Compute and show the learner's confidence score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, s, err := openEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer s.Close()

		snap, err := eng.Confidence(context.Background(), args[0])
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s\n", theme.Title.Render(fmt.Sprintf("Confidence — %s", snap.LearnerID)))
		fmt.Fprintf(&b, "Score:          %d / 100  (%s)\n", snap.Score, snap.Label)
		fmt.Fprintf(&b, "Trend:          %s\n", theme.Trend(string(snap.Trend)))
		fmt.Fprintf(&b, "Pronunciation:  %.1f\n", snap.Pronunciation)
		fmt.Fprintf(&b, "Completion:     %.0f%%", snap.CompletionRate*100)
		fmt.Println(theme.Card.Render(b.String()))

		if len(snap.History) > 1 {
			fmt.Println(theme.Hint.Render("history:"))
			for _, e := range snap.History {
				fmt.Printf("  %s  %d\n", e.ComputedAt.Local().Format("2006-01-02 15:04"), e.Score)
			}
		}
		return nil
	},
}
