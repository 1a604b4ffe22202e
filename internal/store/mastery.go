package store

import (
	"context"
	"fmt"

	"github.com/smehra/sayright/ent"
	"github.com/smehra/sayright/ent/masteryrecord"
	"github.com/smehra/sayright/internal/mastery"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, learnerID, word string) (*mastery.State, error) {
	rec, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.LearnerID(learnerID),
			masteryrecord.Word(word),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery: %w", err)
	}
	return entMasteryToState(rec), nil
}

func (r *masteryRepo) Create(ctx context.Context, s *mastery.State) error {
	_, err := r.client.MasteryRecord.Create().
		SetLearnerID(s.LearnerID).
		SetWord(s.Word).
		SetVersion(1).
		SetObservations(s.Observations).
		SetSuccesses(s.Successes).
		SetAvgScore(s.AvgScore).
		SetDifficulty(s.Difficulty).
		SetInitialDifficulty(s.InitialDifficulty).
		SetImprovementRate(s.ImprovementRate).
		SetLevel(string(s.Level)).
		SetScoreHistory(s.History).
		SetNillableMasteredAt(s.MasteredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create mastery: %w", err)
	}
	return nil
}

func (r *masteryRepo) Update(ctx context.Context, s *mastery.State, expectedVersion int64) (bool, error) {
	n, err := r.client.MasteryRecord.Update().
		Where(
			masteryrecord.LearnerID(s.LearnerID),
			masteryrecord.Word(s.Word),
			masteryrecord.Version(expectedVersion),
		).
		SetVersion(expectedVersion + 1).
		SetObservations(s.Observations).
		SetSuccesses(s.Successes).
		SetAvgScore(s.AvgScore).
		SetDifficulty(s.Difficulty).
		SetInitialDifficulty(s.InitialDifficulty).
		SetImprovementRate(s.ImprovementRate).
		SetLevel(string(s.Level)).
		SetScoreHistory(s.History).
		SetNillableMasteredAt(s.MasteredAt).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("update mastery: %w", err)
	}
	return n > 0, nil
}

func (r *masteryRepo) ListForLearner(ctx context.Context, learnerID string) ([]*mastery.State, error) {
	recs, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.LearnerID(learnerID)).
		Order(ent.Asc(masteryrecord.FieldWord)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery: %w", err)
	}

	out := make([]*mastery.State, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entMasteryToState(rec))
	}
	return out, nil
}

func entMasteryToState(rec *ent.MasteryRecord) *mastery.State {
	return &mastery.State{
		LearnerID:         rec.LearnerID,
		Word:              rec.Word,
		Version:           rec.Version,
		Observations:      rec.Observations,
		Successes:         rec.Successes,
		AvgScore:          rec.AvgScore,
		Difficulty:        rec.Difficulty,
		InitialDifficulty: rec.InitialDifficulty,
		ImprovementRate:   rec.ImprovementRate,
		Level:             mastery.Level(rec.Level),
		History:           rec.ScoreHistory,
		MasteredAt:        rec.MasteredAt,
	}
}
