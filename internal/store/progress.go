package store

import (
	"context"
	"fmt"

	"github.com/smehra/sayright/ent"
	"github.com/smehra/sayright/ent/progressrecord"
	"github.com/smehra/sayright/internal/progress"
)

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, learnerID, unitID string) (*progress.State, error) {
	rec, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.LearnerID(learnerID),
			progressrecord.UnitID(unitID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToState(rec), nil
}

func (r *progressRepo) Create(ctx context.Context, s *progress.State) error {
	_, err := r.client.ProgressRecord.Create().
		SetLearnerID(s.LearnerID).
		SetUnitID(s.UnitID).
		SetVersion(1).
		SetAttempts(s.Attempts).
		SetBestScore(s.BestScore).
		SetLastScore(s.LastScore).
		SetAvgScore(s.AvgScore).
		SetWeakLetters(s.WeakLetters).
		SetWeakPhonemes(s.WeakPhonemes).
		SetPassed(s.Passed).
		SetNillablePassedAt(s.PassedAt).
		SetNillableLastAttemptAt(s.LastAttemptAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Update(ctx context.Context, s *progress.State, expectedVersion int64) (bool, error) {
	n, err := r.client.ProgressRecord.Update().
		Where(
			progressrecord.LearnerID(s.LearnerID),
			progressrecord.UnitID(s.UnitID),
			progressrecord.Version(expectedVersion),
		).
		SetVersion(expectedVersion + 1).
		SetAttempts(s.Attempts).
		SetBestScore(s.BestScore).
		SetLastScore(s.LastScore).
		SetAvgScore(s.AvgScore).
		SetWeakLetters(s.WeakLetters).
		SetWeakPhonemes(s.WeakPhonemes).
		SetPassed(s.Passed).
		SetNillablePassedAt(s.PassedAt).
		SetNillableLastAttemptAt(s.LastAttemptAt).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("update progress: %w", err)
	}
	return n > 0, nil
}

func (r *progressRepo) ListForLearner(ctx context.Context, learnerID string) ([]*progress.State, error) {
	recs, err := r.client.ProgressRecord.Query().
		Where(progressrecord.LearnerID(learnerID)).
		Order(ent.Asc(progressrecord.FieldUnitID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	out := make([]*progress.State, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entProgressToState(rec))
	}
	return out, nil
}

func (r *progressRepo) Learners(ctx context.Context) ([]string, error) {
	ids, err := r.client.ProgressRecord.Query().
		Unique(true).
		Select(progressrecord.FieldLearnerID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}
	return ids, nil
}

func (r *progressRepo) Delete(ctx context.Context, learnerID, unitID string) error {
	_, err := r.client.ProgressRecord.Delete().
		Where(
			progressrecord.LearnerID(learnerID),
			progressrecord.UnitID(unitID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

func entProgressToState(rec *ent.ProgressRecord) *progress.State {
	return &progress.State{
		LearnerID:     rec.LearnerID,
		UnitID:        rec.UnitID,
		Version:       rec.Version,
		Attempts:      rec.Attempts,
		BestScore:     rec.BestScore,
		LastScore:     rec.LastScore,
		AvgScore:      rec.AvgScore,
		WeakLetters:   rec.WeakLetters,
		WeakPhonemes:  rec.WeakPhonemes,
		Passed:        rec.Passed,
		PassedAt:      rec.PassedAt,
		LastAttemptAt: rec.LastAttemptAt,
	}
}
