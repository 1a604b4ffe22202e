// Package engine orchestrates the pronunciation pipeline: score an
// attempt with the vendor, evaluate it against the passing threshold,
// and fold the result into the learner's progress, per-word mastery, and
// confidence records.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smehra/sayright/internal/confidence"
	"github.com/smehra/sayright/internal/evaluate"
	"github.com/smehra/sayright/internal/mastery"
	"github.com/smehra/sayright/internal/progress"
	"github.com/smehra/sayright/internal/scorer"
	"github.com/smehra/sayright/internal/store"
)

var (
	// ErrScoringUnavailable wraps scorer failures. No state is written
	// when scoring fails.
	ErrScoringUnavailable = errors.New("scoring service unavailable")

	// ErrConflict reports that concurrent writers kept invalidating the
	// optimistic version guard past the retry budget.
	ErrConflict = errors.New("conflicting concurrent update")

	// ErrNoData reports that the learner or pair has no recorded state.
	ErrNoData = errors.New("no recorded data")
)

// maxConflictRetries bounds the read-fold-write loop under contention.
const maxConflictRetries = 3

// errStale signals a failed version guard inside a transaction.
var errStale = errors.New("stale version")

// Storage is the persistence surface the engine needs. *store.Store
// satisfies it; tests substitute an in-memory fake.
type Storage interface {
	Repos() *store.Repos
	WithTx(ctx context.Context, fn func(r *store.Repos) error) error
}

// Engine coordinates scoring, evaluation, and state folds.
type Engine struct {
	storage     Storage
	scorer      scorer.Scorer
	assignments confidence.AssignmentSource
	log         *zap.Logger
	threshold   float64
	now         func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithThreshold overrides the default passing threshold.
func WithThreshold(t float64) Option {
	return func(e *Engine) { e.threshold = t }
}

// WithClock overrides the time source. Tests use this for deterministic
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New builds an Engine over the given storage, scorer, and assignment
// source.
func New(storage Storage, sc scorer.Scorer, assignments confidence.AssignmentSource, opts ...Option) *Engine {
	e := &Engine{
		storage:     storage,
		scorer:      sc,
		assignments: assignments,
		log:         zap.NewNop(),
		threshold:   evaluate.DefaultThreshold,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecordRequest describes one pronunciation attempt to record.
type RecordRequest struct {
	LearnerID     string
	UnitID        string
	ReferenceText string
	AudioURL      string
	Locale        string

	// Threshold is the passing threshold for this attempt. Nil means
	// use the engine default; an explicit zero is honored.
	Threshold *float64

	// IdempotencyKey deduplicates client retries. Resending a key
	// returns the originally recorded attempt without re-scoring.
	IdempotencyKey string
}

// RecordAttempt scores the attempt, evaluates it, and atomically appends
// the attempt event and folds the learner's progress. Per-word mastery
// records are folded afterwards. Nothing is written when scoring or
// evaluation fails.
func (e *Engine) RecordAttempt(ctx context.Context, req RecordRequest) (*evaluate.AttemptResult, error) {
	threshold := e.threshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("%w: %v", evaluate.ErrInvalidThreshold, threshold)
	}

	repos := e.storage.Repos()

	if req.IdempotencyKey != "" {
		existing, err := repos.Attempts.FindByKey(ctx, req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			e.log.Debug("idempotent replay",
				zap.String("learner_id", req.LearnerID),
				zap.String("idempotency_key", req.IdempotencyKey))
			return existing, nil
		}
	}

	resp, err := e.scorer.Score(ctx, scorer.Request{
		ReferenceText: req.ReferenceText,
		AudioURL:      req.AudioURL,
		Locale:        req.Locale,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}

	result, replayed, err := e.recordEvaluated(ctx, req, resp, threshold)
	if err != nil {
		return nil, err
	}
	if replayed {
		// A concurrent request with the same key won the race and
		// already folded progress and mastery. Return its attempt.
		e.log.Debug("idempotent replay",
			zap.String("learner_id", req.LearnerID),
			zap.String("idempotency_key", req.IdempotencyKey))
		return result, nil
	}

	if err := e.foldMastery(ctx, result); err != nil {
		return nil, err
	}

	e.log.Info("attempt recorded",
		zap.String("learner_id", result.LearnerID),
		zap.String("unit_id", result.UnitID),
		zap.Int("attempt_number", result.AttemptNumber),
		zap.Float64("overall_score", result.OverallScore),
		zap.Bool("passed", result.Passed))

	return result, nil
}

// recordEvaluated runs the optimistic read-fold-write loop: append the
// attempt event and create or update the progress record in one
// transaction. replayed reports that another request with the same
// idempotency key committed first; the returned attempt is theirs and
// must not be folded again.
func (e *Engine) recordEvaluated(ctx context.Context, req RecordRequest, resp *scorer.Response, threshold float64) (result *evaluate.AttemptResult, replayed bool, err error) {
	repos := e.storage.Repos()

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		prior, err := repos.Progress.Get(ctx, req.LearnerID, req.UnitID)
		if err != nil {
			return nil, false, err
		}

		// The immutable event log numbers attempts; it keeps counting
		// across progress resets.
		count, err := repos.Attempts.CountForUnit(ctx, req.LearnerID, req.UnitID)
		if err != nil {
			return nil, false, err
		}

		now := e.now()
		result, err := evaluate.Evaluate(req.LearnerID, req.UnitID, resp, threshold, count, now)
		if err != nil {
			return nil, false, err
		}
		next := progress.Apply(prior, result, now)

		err = e.storage.WithTx(ctx, func(r *store.Repos) error {
			if err := r.Attempts.Append(ctx, result, req.IdempotencyKey); err != nil {
				return err
			}
			if prior == nil {
				return r.Progress.Create(ctx, next)
			}
			ok, err := r.Progress.Update(ctx, next, prior.Version)
			if err != nil {
				return err
			}
			if !ok {
				return errStale
			}
			return nil
		})
		if err == nil {
			return result, false, nil
		}
		if errors.Is(err, errStale) {
			continue
		}
		if store.IsConstraintError(err) {
			// Either a concurrent first attempt created the progress
			// record, or the idempotency key raced another request. In
			// the key case the winner already folded everything, so the
			// stored attempt is returned as a replay.
			if req.IdempotencyKey != "" {
				existing, ferr := repos.Attempts.FindByKey(ctx, req.IdempotencyKey)
				if ferr != nil {
					return nil, false, ferr
				}
				if existing != nil {
					return existing, true, nil
				}
			}
			continue
		}
		return nil, false, err
	}

	return nil, false, fmt.Errorf("%w: progress for learner %s unit %s", ErrConflict, req.LearnerID, req.UnitID)
}

// foldMastery folds each scored word of the attempt into the learner's
// per-word mastery record. Words are keyed by their lowercased text; the
// attempt's unit is recorded as the drill.
func (e *Engine) foldMastery(ctx context.Context, result *evaluate.AttemptResult) error {
	repos := e.storage.Repos()

	for _, w := range result.Words {
		word := normalizeWord(w.Text)
		if word == "" {
			continue
		}

		var folded bool
		for attempt := 0; attempt < maxConflictRetries && !folded; attempt++ {
			prior, err := repos.Mastery.Get(ctx, result.LearnerID, word)
			if err != nil {
				return err
			}
			next := mastery.Observe(prior, result.LearnerID, word, w.Score, result.UnitID, result.Timestamp)

			if prior == nil {
				err = repos.Mastery.Create(ctx, next)
				if err == nil {
					folded = true
					break
				}
				if store.IsConstraintError(err) {
					continue
				}
				return err
			}

			ok, err := repos.Mastery.Update(ctx, next, prior.Version)
			if err != nil {
				return err
			}
			if ok {
				if prior.Level != next.Level {
					e.log.Info("mastery level changed",
						zap.String("learner_id", result.LearnerID),
						zap.String("word", word),
						zap.String("from", string(prior.Level)),
						zap.String("to", string(next.Level)))
				}
				folded = true
			}
		}
		if !folded {
			return fmt.Errorf("%w: mastery for learner %s word %s", ErrConflict, result.LearnerID, word)
		}
	}
	return nil
}

// normalizeWord lowercases a word and strips surrounding whitespace so
// "Paris" and "paris" share one mastery record.
func normalizeWord(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
