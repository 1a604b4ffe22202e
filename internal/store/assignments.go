package store

import (
	"context"
	"fmt"

	"github.com/smehra/sayright/ent"
	"github.com/smehra/sayright/ent/progressrecord"
)

// ProgressAssignments derives assignment counts from tracked progress:
// every unit the learner has attempted counts as assigned, and every
// passed unit counts as completed. Platforms with a real curriculum
// service can supply their own confidence.AssignmentSource instead.
type ProgressAssignments struct {
	client *ent.Client
}

// NewProgressAssignments returns an assignment source backed by the
// store's progress records.
func NewProgressAssignments(s *Store) *ProgressAssignments {
	return &ProgressAssignments{client: s.client}
}

func (a *ProgressAssignments) Counts(ctx context.Context, learnerID string) (assigned, completed int, err error) {
	assigned, err = a.client.ProgressRecord.Query().
		Where(progressrecord.LearnerID(learnerID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count assigned units: %w", err)
	}

	completed, err = a.client.ProgressRecord.Query().
		Where(
			progressrecord.LearnerID(learnerID),
			progressrecord.Passed(true),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count completed units: %w", err)
	}
	return assigned, completed, nil
}
