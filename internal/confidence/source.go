package confidence

import "context"

// AssignmentSource supplies the completion inputs for a learner: how many
// practice units were assigned and how many were completed. The drill and
// assignment store is an external collaborator; implementations live at
// the edges.
type AssignmentSource interface {
	Counts(ctx context.Context, learnerID string) (assigned, completed int, err error)
}

// StaticSource is an AssignmentSource with fixed counts, for tests and
// offline tooling.
type StaticSource struct {
	Assigned  int
	Completed int
	Err       error
}

func (s StaticSource) Counts(_ context.Context, _ string) (int, int, error) {
	return s.Assigned, s.Completed, s.Err
}
