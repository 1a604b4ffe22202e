package store

import (
	"context"

	"github.com/smehra/sayright/ent"
	"github.com/smehra/sayright/internal/confidence"
	"github.com/smehra/sayright/internal/evaluate"
	"github.com/smehra/sayright/internal/mastery"
	"github.com/smehra/sayright/internal/progress"
)

// AttemptRepo provides append and lookup access to the immutable attempt
// log.
type AttemptRepo interface {
	// Append records an attempt. idempotencyKey may be empty; when set it
	// must be unique across all attempts.
	Append(ctx context.Context, result *evaluate.AttemptResult, idempotencyKey string) error

	// CountForUnit returns the number of attempts recorded for the pair.
	CountForUnit(ctx context.Context, learnerID, unitID string) (int, error)

	// FindByKey returns the attempt recorded under the idempotency key,
	// or nil if no such attempt exists.
	FindByKey(ctx context.Context, idempotencyKey string) (*evaluate.AttemptResult, error)

	// RecentForLearner returns the learner's most recent attempts across
	// all units, newest first.
	RecentForLearner(ctx context.Context, learnerID string, limit int) ([]*evaluate.AttemptResult, error)
}

// ProgressRepo manages the mutable per-(learner, unit) progress records.
// Updates are guarded by an optimistic version token.
type ProgressRepo interface {
	// Get returns the progress state for the pair, or nil if none exists.
	Get(ctx context.Context, learnerID, unitID string) (*progress.State, error)

	// Create inserts a fresh record. Returns a constraint error if the
	// pair already exists (concurrent first attempts).
	Create(ctx context.Context, s *progress.State) error

	// Update writes s only if the stored version still equals
	// expectedVersion, bumping the version on success. Returns false when
	// the guard fails.
	Update(ctx context.Context, s *progress.State, expectedVersion int64) (bool, error)

	// ListForLearner returns all progress records for the learner.
	ListForLearner(ctx context.Context, learnerID string) ([]*progress.State, error)

	// Learners returns the distinct learner IDs with any tracked progress.
	Learners(ctx context.Context) ([]string, error)

	// Delete removes the record for the pair. Explicit reset only.
	Delete(ctx context.Context, learnerID, unitID string) error
}

// MasteryRepo manages the per-(learner, word) mastery records with the
// same optimistic versioning as ProgressRepo.
type MasteryRepo interface {
	Get(ctx context.Context, learnerID, word string) (*mastery.State, error)
	Create(ctx context.Context, s *mastery.State) error
	Update(ctx context.Context, s *mastery.State, expectedVersion int64) (bool, error)
	ListForLearner(ctx context.Context, learnerID string) ([]*mastery.State, error)
}

// ConfidenceRepo stores the latest confidence snapshot per learner.
type ConfidenceRepo interface {
	// Get returns the learner's latest snapshot, or nil if confidence has
	// never been computed.
	Get(ctx context.Context, learnerID string) (*confidence.Snapshot, error)

	// Upsert writes the snapshot, replacing any previous one.
	Upsert(ctx context.Context, snap *confidence.Snapshot) error
}

// Repos bundles the repository implementations sharing one ent client.
type Repos struct {
	Attempts   AttemptRepo
	Progress   ProgressRepo
	Mastery    MasteryRepo
	Confidence ConfidenceRepo
}

func newRepos(client *ent.Client, seq *sequenceCounter) *Repos {
	return &Repos{
		Attempts:   &attemptRepo{client: client, seq: seq},
		Progress:   &progressRepo{client: client},
		Mastery:    &masteryRepo{client: client},
		Confidence: &confidenceRepo{client: client},
	}
}
