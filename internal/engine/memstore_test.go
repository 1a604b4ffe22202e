package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/smehra/sayright/internal/confidence"
	"github.com/smehra/sayright/internal/evaluate"
	"github.com/smehra/sayright/internal/mastery"
	"github.com/smehra/sayright/internal/progress"
	"github.com/smehra/sayright/internal/store"
)

// memStorage is an in-memory Storage for engine tests. It mirrors the
// repository contracts: nil-when-absent gets, constraint errors on
// duplicate creates, and version-guarded updates.
type memStorage struct {
	attempts   *memAttempts
	progress   *memProgress
	mastery    *memMastery
	confidence *memConfidence
}

func newMemStorage() *memStorage {
	return &memStorage{
		attempts:   &memAttempts{keys: map[string]*evaluate.AttemptResult{}},
		progress:   &memProgress{records: map[string]*progress.State{}},
		mastery:    &memMastery{records: map[string]*mastery.State{}},
		confidence: &memConfidence{records: map[string]*confidence.Snapshot{}},
	}
}

func (m *memStorage) Repos() *store.Repos {
	return &store.Repos{
		Attempts:   m.attempts,
		Progress:   m.progress,
		Mastery:    m.mastery,
		Confidence: m.confidence,
	}
}

func (m *memStorage) WithTx(_ context.Context, fn func(r *store.Repos) error) error {
	events := m.attempts.events
	keys := make(map[string]*evaluate.AttemptResult, len(m.attempts.keys))
	for k, v := range m.attempts.keys {
		keys[k] = v
	}
	if err := fn(m.Repos()); err != nil {
		m.attempts.events = events
		m.attempts.keys = keys
		return err
	}
	return nil
}

type memAttempts struct {
	events []*evaluate.AttemptResult
	keys   map[string]*evaluate.AttemptResult

	// missFindByKey makes the next n FindByKey calls report a miss,
	// simulating the window where a concurrent writer has not committed
	// its key yet.
	missFindByKey int
}

func (m *memAttempts) Append(_ context.Context, result *evaluate.AttemptResult, key string) error {
	if key != "" {
		if _, ok := m.keys[key]; ok {
			return fmt.Errorf("UNIQUE constraint failed: attempt_events.idempotency_key")
		}
	}
	cp := *result
	m.events = append(m.events, &cp)
	if key != "" {
		m.keys[key] = &cp
	}
	return nil
}

func (m *memAttempts) CountForUnit(_ context.Context, learnerID, unitID string) (int, error) {
	var n int
	for _, e := range m.events {
		if e.LearnerID == learnerID && e.UnitID == unitID {
			n++
		}
	}
	return n, nil
}

func (m *memAttempts) FindByKey(_ context.Context, key string) (*evaluate.AttemptResult, error) {
	if m.missFindByKey > 0 {
		m.missFindByKey--
		return nil, nil
	}
	return m.keys[key], nil
}

func (m *memAttempts) RecentForLearner(_ context.Context, learnerID string, limit int) ([]*evaluate.AttemptResult, error) {
	var out []*evaluate.AttemptResult
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		if m.events[i].LearnerID == learnerID {
			out = append(out, m.events[i])
		}
	}
	return out, nil
}

type memProgress struct {
	records map[string]*progress.State

	// staleUpdates makes the next n Update calls fail their version
	// guard, simulating a concurrent writer.
	staleUpdates int
}

func progressKey(learnerID, unitID string) string {
	return learnerID + "|" + unitID
}

func (m *memProgress) Get(_ context.Context, learnerID, unitID string) (*progress.State, error) {
	s, ok := m.records[progressKey(learnerID, unitID)]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memProgress) Create(_ context.Context, s *progress.State) error {
	key := progressKey(s.LearnerID, s.UnitID)
	if _, ok := m.records[key]; ok {
		return fmt.Errorf("UNIQUE constraint failed: progress_records.learner_id, progress_records.unit_id")
	}
	cp := *s
	cp.Version = 1
	m.records[key] = &cp
	return nil
}

func (m *memProgress) Update(_ context.Context, s *progress.State, expectedVersion int64) (bool, error) {
	if m.staleUpdates > 0 {
		m.staleUpdates--
		return false, nil
	}
	key := progressKey(s.LearnerID, s.UnitID)
	cur, ok := m.records[key]
	if !ok || cur.Version != expectedVersion {
		return false, nil
	}
	cp := *s
	cp.Version = expectedVersion + 1
	m.records[key] = &cp
	return true, nil
}

func (m *memProgress) ListForLearner(_ context.Context, learnerID string) ([]*progress.State, error) {
	var out []*progress.State
	for _, s := range m.records {
		if s.LearnerID == learnerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitID < out[j].UnitID })
	return out, nil
}

func (m *memProgress) Learners(_ context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	for _, s := range m.records {
		seen[s.LearnerID] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (m *memProgress) Delete(_ context.Context, learnerID, unitID string) error {
	delete(m.records, progressKey(learnerID, unitID))
	return nil
}

type memMastery struct {
	records map[string]*mastery.State
}

func masteryKey(learnerID, word string) string {
	return learnerID + "|" + word
}

func (m *memMastery) Get(_ context.Context, learnerID, word string) (*mastery.State, error) {
	s, ok := m.records[masteryKey(learnerID, word)]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memMastery) Create(_ context.Context, s *mastery.State) error {
	key := masteryKey(s.LearnerID, s.Word)
	if _, ok := m.records[key]; ok {
		return fmt.Errorf("UNIQUE constraint failed: mastery_records.learner_id, mastery_records.word")
	}
	cp := *s
	cp.Version = 1
	m.records[key] = &cp
	return nil
}

func (m *memMastery) Update(_ context.Context, s *mastery.State, expectedVersion int64) (bool, error) {
	key := masteryKey(s.LearnerID, s.Word)
	cur, ok := m.records[key]
	if !ok || cur.Version != expectedVersion {
		return false, nil
	}
	cp := *s
	cp.Version = expectedVersion + 1
	m.records[key] = &cp
	return true, nil
}

func (m *memMastery) ListForLearner(_ context.Context, learnerID string) ([]*mastery.State, error) {
	var out []*mastery.State
	for _, s := range m.records {
		if s.LearnerID == learnerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out, nil
}

type memConfidence struct {
	records map[string]*confidence.Snapshot
}

func (m *memConfidence) Get(_ context.Context, learnerID string) (*confidence.Snapshot, error) {
	s, ok := m.records[learnerID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memConfidence) Upsert(_ context.Context, snap *confidence.Snapshot) error {
	cp := *snap
	m.records[snap.LearnerID] = &cp
	return nil
}
