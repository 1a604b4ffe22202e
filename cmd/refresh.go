package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smehra/sayright/internal/schedule"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Recompute confidence for all learners",
	Long:  "Recomputes confidence snapshots for every learner with tracked progress. With --every, keeps running on a schedule until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		every, _ := cmd.Flags().GetDuration("every")

		eng, s, err := openEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer s.Close()

		if every <= 0 {
			refreshed, err := eng.RefreshAll(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Refreshed %d learner(s).\n", refreshed)
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		refresher := schedule.NewConfidenceRefresher(eng, every, nil)
		if err := refresher.Start(ctx); err != nil {
			return err
		}
		defer refresher.Stop()

		fmt.Printf("Refreshing every %s. Press Ctrl+C to stop.\n", every)
		<-ctx.Done()
		return nil
	},
}

func init() {
	refreshCmd.Flags().Duration("every", 0, "Keep refreshing on this interval (e.g. 1h)")
}
