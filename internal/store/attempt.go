package store

import (
	"context"
	"fmt"

	"github.com/smehra/sayright/ent"
	"github.com/smehra/sayright/ent/attemptevent"
	"github.com/smehra/sayright/internal/evaluate"
)

type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, result *evaluate.AttemptResult, idempotencyKey string) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(result.Timestamp).
		SetLearnerID(result.LearnerID).
		SetUnitID(result.UnitID).
		SetAttemptNumber(result.AttemptNumber).
		SetOverallScore(result.OverallScore).
		SetNillableFluencyScore(result.FluencyScore).
		SetPassed(result.Passed).
		SetThreshold(result.Threshold).
		SetWordScores(result.Words).
		SetWeakLetters(result.WeakLetters).
		SetWeakPhonemes(result.WeakPhonemes)

	if idempotencyKey != "" {
		builder = builder.SetIdempotencyKey(idempotencyKey)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) CountForUnit(ctx context.Context, learnerID, unitID string) (int, error) {
	n, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.UnitID(unitID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

func (r *attemptRepo) FindByKey(ctx context.Context, idempotencyKey string) (*evaluate.AttemptResult, error) {
	e, err := r.client.AttemptEvent.Query().
		Where(attemptevent.IdempotencyKey(idempotencyKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find attempt by key: %w", err)
	}
	return entAttemptToResult(e), nil
}

func (r *attemptRepo) RecentForLearner(ctx context.Context, learnerID string, limit int) ([]*evaluate.AttemptResult, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	out := make([]*evaluate.AttemptResult, 0, len(events))
	for _, e := range events {
		out = append(out, entAttemptToResult(e))
	}
	return out, nil
}

func entAttemptToResult(e *ent.AttemptEvent) *evaluate.AttemptResult {
	return &evaluate.AttemptResult{
		LearnerID:     e.LearnerID,
		UnitID:        e.UnitID,
		AttemptNumber: e.AttemptNumber,
		Timestamp:     e.Timestamp,
		OverallScore:  e.OverallScore,
		FluencyScore:  e.FluencyScore,
		Threshold:     e.Threshold,
		Passed:        e.Passed,
		Words:         e.WordScores,
		WeakLetters:   e.WeakLetters,
		WeakPhonemes:  e.WeakPhonemes,
	}
}
