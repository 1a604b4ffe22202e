// Package schedule runs the periodic confidence refresh so learner
// snapshots stay warm between on-demand computations.
package schedule

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Refresher is the slice of the engine the scheduler needs.
type Refresher interface {
	RefreshAll(ctx context.Context) (int, error)
}

// ConfidenceRefresher periodically recomputes confidence for every
// learner with tracked progress.
type ConfidenceRefresher struct {
	engine    Refresher
	scheduler *gocron.Scheduler
	interval  time.Duration
	log       *zap.Logger
}

// NewConfidenceRefresher builds a refresher firing every interval.
func NewConfidenceRefresher(engine Refresher, interval time.Duration, log *zap.Logger) *ConfidenceRefresher {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConfidenceRefresher{
		engine:    engine,
		scheduler: gocron.NewScheduler(time.UTC),
		interval:  interval,
		log:       log,
	}
}

// Start schedules the refresh job and runs the scheduler in the
// background. The first run fires immediately.
func (r *ConfidenceRefresher) Start(ctx context.Context) error {
	_, err := r.scheduler.Every(r.interval).StartImmediately().Do(func() {
		refreshed, err := r.engine.RefreshAll(ctx)
		if err != nil {
			r.log.Warn("confidence refresh had failures",
				zap.Int("refreshed", refreshed),
				zap.Error(err))
			return
		}
		r.log.Debug("confidence refresh run",
			zap.Int("refreshed", refreshed))
	})
	if err != nil {
		return err
	}
	r.scheduler.StartAsync()
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (r *ConfidenceRefresher) Stop() {
	r.scheduler.Stop()
}
