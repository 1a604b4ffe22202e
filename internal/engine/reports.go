package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/smehra/sayright/internal/confidence"
	"github.com/smehra/sayright/internal/evaluate"
	"github.com/smehra/sayright/internal/mastery"
	"github.com/smehra/sayright/internal/progress"
)

// Progress returns the progress record for the pair, or ErrNoData if the
// learner has never attempted the unit.
func (e *Engine) Progress(ctx context.Context, learnerID, unitID string) (*progress.State, error) {
	s, err := e.storage.Repos().Progress.Get(ctx, learnerID, unitID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: learner %s unit %s", ErrNoData, learnerID, unitID)
	}
	return s, nil
}

// ListProgress returns all progress records for the learner, ordered by
// unit.
func (e *Engine) ListProgress(ctx context.Context, learnerID string) ([]*progress.State, error) {
	return e.storage.Repos().Progress.ListForLearner(ctx, learnerID)
}

// Mastery returns the mastery record for the word, or ErrNoData when the
// learner has never been scored on it. The word is normalized the same
// way recording normalizes it.
func (e *Engine) Mastery(ctx context.Context, learnerID, word string) (*mastery.State, error) {
	s, err := e.storage.Repos().Mastery.Get(ctx, learnerID, normalizeWord(word))
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: learner %s word %s", ErrNoData, learnerID, word)
	}
	return s, nil
}

// ListMastery returns all mastery records for the learner, ordered by
// word.
func (e *Engine) ListMastery(ctx context.Context, learnerID string) ([]*mastery.State, error) {
	return e.storage.Repos().Mastery.ListForLearner(ctx, learnerID)
}

// RecentAttempts returns the learner's most recent attempts across all
// units, newest first.
func (e *Engine) RecentAttempts(ctx context.Context, learnerID string, limit int) ([]*evaluate.AttemptResult, error) {
	return e.storage.Repos().Attempts.RecentForLearner(ctx, learnerID, limit)
}

// Confidence computes a fresh confidence snapshot for the learner,
// persists it, and returns it. Returns ErrNoData when the learner has no
// tracked progress to compute from.
func (e *Engine) Confidence(ctx context.Context, learnerID string) (*confidence.Snapshot, error) {
	repos := e.storage.Repos()

	records, err := repos.Progress.ListForLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: learner %s", ErrNoData, learnerID)
	}

	var sum float64
	for _, r := range records {
		sum += r.AvgScore
	}
	pronunciation := sum / float64(len(records))

	assigned, completed, err := e.assignments.Counts(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	var prior []confidence.Entry
	if existing, err := repos.Confidence.Get(ctx, learnerID); err != nil {
		return nil, err
	} else if existing != nil {
		prior = existing.History
	}

	snap := confidence.BuildSnapshot(learnerID, pronunciation, completed, assigned, prior, e.now())
	if err := repos.Confidence.Upsert(ctx, snap); err != nil {
		return nil, err
	}

	e.log.Debug("confidence computed",
		zap.String("learner_id", learnerID),
		zap.Int("score", snap.Score),
		zap.String("trend", string(snap.Trend)))

	return snap, nil
}

// WeakSpots aggregates the learner's trouble areas: accumulated weak
// letters and phonemes across all units, plus words still below the
// practicing level, hardest first.
type WeakSpots struct {
	Letters  []string
	Phonemes []string
	Words    []*mastery.State
}

// WeakSpots builds the learner's weak-spot report.
func (e *Engine) WeakSpots(ctx context.Context, learnerID string) (*WeakSpots, error) {
	repos := e.storage.Repos()

	records, err := repos.Progress.ListForLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	letters := make(map[string]struct{})
	phonemes := make(map[string]struct{})
	for _, r := range records {
		for _, l := range r.WeakLetters {
			letters[l] = struct{}{}
		}
		for _, p := range r.WeakPhonemes {
			phonemes[p] = struct{}{}
		}
	}

	words, err := repos.Mastery.ListForLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	weak := make([]*mastery.State, 0, len(words))
	for _, w := range words {
		if w.Level == mastery.LevelStruggling || w.Level == mastery.LevelLearning {
			weak = append(weak, w)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Difficulty != weak[j].Difficulty {
			return weak[i].Difficulty > weak[j].Difficulty
		}
		return weak[i].Word < weak[j].Word
	})

	return &WeakSpots{
		Letters:  sortedSet(letters),
		Phonemes: sortedSet(phonemes),
		Words:    weak,
	}, nil
}

// Reset deletes the progress record for the pair. The attempt log is
// immutable and keeps its events; mastery and confidence records are
// untouched.
func (e *Engine) Reset(ctx context.Context, learnerID, unitID string) error {
	if err := e.storage.Repos().Progress.Delete(ctx, learnerID, unitID); err != nil {
		return err
	}
	e.log.Info("progress reset",
		zap.String("learner_id", learnerID),
		zap.String("unit_id", unitID))
	return nil
}

// RefreshAll recomputes confidence for every learner with tracked
// progress. Learners without data are skipped; other failures are
// collected and returned joined.
func (e *Engine) RefreshAll(ctx context.Context) (int, error) {
	learners, err := e.storage.Repos().Progress.Learners(ctx)
	if err != nil {
		return 0, err
	}

	var refreshed int
	var errs []error
	for _, id := range learners {
		if _, err := e.Confidence(ctx, id); err != nil {
			if errors.Is(err, ErrNoData) {
				continue
			}
			errs = append(errs, fmt.Errorf("learner %s: %w", id, err))
			continue
		}
		refreshed++
	}

	e.log.Info("confidence refresh finished",
		zap.Int("refreshed", refreshed),
		zap.Int("failed", len(errs)))

	return refreshed, errors.Join(errs...)
}

func sortedSet(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
