package store

import (
	"context"
	"fmt"

	"github.com/smehra/sayright/ent"
	"github.com/smehra/sayright/ent/confidencerecord"
	"github.com/smehra/sayright/internal/confidence"
)

type confidenceRepo struct {
	client *ent.Client
}

func (r *confidenceRepo) Get(ctx context.Context, learnerID string) (*confidence.Snapshot, error) {
	rec, err := r.client.ConfidenceRecord.Query().
		Where(confidencerecord.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query confidence: %w", err)
	}
	return &confidence.Snapshot{
		LearnerID:      rec.LearnerID,
		Score:          rec.Score,
		Pronunciation:  rec.Pronunciation,
		CompletionRate: rec.CompletionRate,
		Label:          rec.Label,
		Trend:          confidence.Trend(rec.Trend),
		History:        rec.History,
		ComputedAt:     rec.ComputedAt,
	}, nil
}

func (r *confidenceRepo) Upsert(ctx context.Context, snap *confidence.Snapshot) error {
	existing, err := r.client.ConfidenceRecord.Query().
		Where(confidencerecord.LearnerID(snap.LearnerID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query confidence for upsert: %w", err)
	}

	if existing == nil {
		_, err = r.client.ConfidenceRecord.Create().
			SetLearnerID(snap.LearnerID).
			SetScore(snap.Score).
			SetPronunciation(snap.Pronunciation).
			SetCompletionRate(snap.CompletionRate).
			SetLabel(snap.Label).
			SetTrend(string(snap.Trend)).
			SetHistory(snap.History).
			SetComputedAt(snap.ComputedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create confidence: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetScore(snap.Score).
		SetPronunciation(snap.Pronunciation).
		SetCompletionRate(snap.CompletionRate).
		SetLabel(snap.Label).
		SetTrend(string(snap.Trend)).
		SetHistory(snap.History).
		SetComputedAt(snap.ComputedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update confidence: %w", err)
	}
	return nil
}
