package store

import (
	"context"
	"testing"
	"time"

	"github.com/smehra/sayright/internal/confidence"
	"github.com/smehra/sayright/internal/evaluate"
	"github.com/smehra/sayright/internal/mastery"
	"github.com/smehra/sayright/internal/progress"
	"github.com/smehra/sayright/internal/scorer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Errorf("sequence = %d, want %d", got, want)
		}
	}
}

func testAttempt(learnerID, unitID string, n int, score float64, at time.Time) *evaluate.AttemptResult {
	return &evaluate.AttemptResult{
		LearnerID:     learnerID,
		UnitID:        unitID,
		AttemptNumber: n,
		Timestamp:     at,
		OverallScore:  score,
		Threshold:     70,
		Passed:        score >= 70,
		Words:         []scorer.WordScore{{Text: "rural", Score: score}},
		WeakLetters:   []string{"r", "u"},
	}
}

func TestAttemptAppendAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repos().Attempts
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	for i := 1; i <= 3; i++ {
		if err := repo.Append(ctx, testAttempt("maya", "unit-7", i, 55, now), ""); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	n, err := repo.CountForUnit(ctx, "maya", "unit-7")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	n, err = repo.CountForUnit(ctx, "maya", "other")
	if err != nil {
		t.Fatalf("count other: %v", err)
	}
	if n != 0 {
		t.Errorf("count for other unit = %d, want 0", n)
	}
}

func TestAttemptFindByKey(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repos().Attempts
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	found, err := repo.FindByKey(ctx, "missing")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if found != nil {
		t.Fatal("expected nil for unknown key")
	}

	if err := repo.Append(ctx, testAttempt("maya", "unit-7", 1, 82, now), "key-1"); err != nil {
		t.Fatalf("append: %v", err)
	}

	found, err = repo.FindByKey(ctx, "key-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil {
		t.Fatal("expected attempt for key-1")
	}
	if found.OverallScore != 82 || found.AttemptNumber != 1 {
		t.Errorf("found = %+v", found)
	}
	if len(found.Words) != 1 || found.Words[0].Text != "rural" {
		t.Errorf("words = %+v, want rural", found.Words)
	}
}

func TestAttemptDuplicateKeyRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repos().Attempts
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	if err := repo.Append(ctx, testAttempt("maya", "unit-7", 1, 82, now), "key-1"); err != nil {
		t.Fatalf("first append: %v", err)
	}
	err := repo.Append(ctx, testAttempt("maya", "unit-7", 2, 60, now), "key-1")
	if err == nil {
		t.Fatal("expected constraint error for duplicate key")
	}
	if !IsConstraintError(err) {
		t.Errorf("err = %v, want constraint error", err)
	}
}

func TestAttemptRecentForLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repos().Attempts
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	for i := 1; i <= 4; i++ {
		if err := repo.Append(ctx, testAttempt("maya", "unit-7", i, float64(50+i), now), ""); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.RecentForLearner(ctx, "maya", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	if recent[0].AttemptNumber != 4 || recent[1].AttemptNumber != 3 {
		t.Errorf("order = %d, %d; want newest first", recent[0].AttemptNumber, recent[1].AttemptNumber)
	}
}

func TestProgressVersionedUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repos().Progress
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	got, err := repo.Get(ctx, "maya", "unit-7")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil before create")
	}

	state := &progress.State{
		LearnerID:     "maya",
		UnitID:        "unit-7",
		Attempts:      1,
		BestScore:     55,
		LastScore:     55,
		AvgScore:      55,
		WeakLetters:   []string{"r", "u"},
		LastAttemptAt: &now,
	}
	if err := repo.Create(ctx, state); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err = repo.Get(ctx, "maya", "unit-7")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Version != 1 {
		t.Errorf("version = %d, want 1", got.Version)
	}

	got.Attempts = 2
	got.AvgScore = 68.5
	ok, err := repo.Update(ctx, got, 1)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatal("update with current version should succeed")
	}

	// The stale writer loses.
	ok, err = repo.Update(ctx, got, 1)
	if err != nil {
		t.Fatalf("stale update: %v", err)
	}
	if ok {
		t.Fatal("update with stale version should fail the guard")
	}

	got, err = repo.Get(ctx, "maya", "unit-7")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Version != 2 || got.Attempts != 2 {
		t.Errorf("state = version %d attempts %d, want 2 and 2", got.Version, got.Attempts)
	}
}

func TestProgressLearnersAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repos().Progress
	ctx := context.Background()

	for _, pair := range []struct{ learner, unit string }{
		{"maya", "unit-1"},
		{"maya", "unit-2"},
		{"omar", "unit-1"},
	} {
		err := repo.Create(ctx, &progress.State{LearnerID: pair.learner, UnitID: pair.unit, Attempts: 1})
		if err != nil {
			t.Fatalf("create %s/%s: %v", pair.learner, pair.unit, err)
		}
	}

	learners, err := repo.Learners(ctx)
	if err != nil {
		t.Fatalf("learners: %v", err)
	}
	if len(learners) != 2 {
		t.Errorf("learners = %v, want 2 distinct", learners)
	}

	if err := repo.Delete(ctx, "maya", "unit-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.Get(ctx, "maya", "unit-1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil after delete")
	}

	records, err := repo.ListForLearner(ctx, "maya")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].UnitID != "unit-2" {
		t.Errorf("remaining = %+v, want only unit-2", records)
	}
}

func TestMasteryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repos().Mastery
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	state := &mastery.State{
		LearnerID:         "maya",
		Word:              "rural",
		Observations:      3,
		Successes:         1,
		AvgScore:          62,
		Difficulty:        38,
		InitialDifficulty: 45,
		ImprovementRate:   15.6,
		Level:             mastery.LevelLearning,
		History: []mastery.Observation{
			{Timestamp: now, Score: 62, DrillID: "unit-7"},
		},
	}
	if err := repo.Create(ctx, state); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "maya", "rural")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected record")
	}
	if got.Level != mastery.LevelLearning || got.AvgScore != 62 {
		t.Errorf("state = level %s avg %v", got.Level, got.AvgScore)
	}
	if len(got.History) != 1 || got.History[0].DrillID != "unit-7" {
		t.Errorf("history = %+v", got.History)
	}

	got.Observations = 4
	got.Level = mastery.LevelPracticing
	ok, err := repo.Update(ctx, got, got.Version)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatal("update should succeed")
	}

	list, err := repo.ListForLearner(ctx, "maya")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Level != mastery.LevelPracticing {
		t.Errorf("list = %+v", list)
	}
}

func TestConfidenceUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repos().Confidence
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	got, err := repo.Get(ctx, "maya")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil before upsert")
	}

	snap := &confidence.Snapshot{
		LearnerID:      "maya",
		Score:          62,
		Pronunciation:  70,
		CompletionRate: 0.5,
		Label:          "Developing",
		Trend:          confidence.TrendStable,
		History:        []confidence.Entry{{Score: 62, ComputedAt: now}},
		ComputedAt:     now,
	}
	if err := repo.Upsert(ctx, snap); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	snap.Score = 68
	snap.Trend = confidence.TrendImproving
	snap.History = append(snap.History, confidence.Entry{Score: 68, ComputedAt: now.Add(time.Hour)})
	if err := repo.Upsert(ctx, snap); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err = repo.Get(ctx, "maya")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != 68 || got.Trend != confidence.TrendImproving {
		t.Errorf("snapshot = score %d trend %s", got.Score, got.Trend)
	}
	if len(got.History) != 2 {
		t.Errorf("history length = %d, want 2", len(got.History))
	}

	count, err := s.Client().ConfidenceRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("records = %d, want 1 per learner", count)
	}
}

func TestProgressAssignmentsCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repos().Progress
	ctx := context.Background()

	for _, rec := range []struct {
		unit   string
		passed bool
	}{
		{"unit-1", true},
		{"unit-2", false},
		{"unit-3", false},
	} {
		err := repo.Create(ctx, &progress.State{
			LearnerID: "maya", UnitID: rec.unit, Attempts: 1, Passed: rec.passed,
		})
		if err != nil {
			t.Fatalf("create %s: %v", rec.unit, err)
		}
	}

	assigned, completed, err := NewProgressAssignments(s).Counts(ctx, "maya")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if assigned != 3 || completed != 1 {
		t.Errorf("counts = %d assigned %d completed, want 3 and 1", assigned, completed)
	}
}
