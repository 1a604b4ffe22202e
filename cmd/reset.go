package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <learner> <unit>",
	Short: "Reset progress for a practice unit",
	Long:  "Deletes the progress record for the pair. The attempt log, mastery records, and confidence history are kept.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, s, err := openEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := eng.Reset(context.Background(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Progress for %s / %s reset.\n", args[0], args[1])
		return nil
	},
}
