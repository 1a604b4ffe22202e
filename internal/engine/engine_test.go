package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smehra/sayright/internal/confidence"
	"github.com/smehra/sayright/internal/evaluate"
	"github.com/smehra/sayright/internal/mastery"
	"github.com/smehra/sayright/internal/scorer"
)

var testTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testTime }

func singleWord(text string, score float64) *scorer.Response {
	return &scorer.Response{
		UtteranceScore: score,
		Words:          []scorer.WordScore{{Text: text, Score: score}},
	}
}

func newTestEngine(storage *memStorage, responses ...scorer.MockResponse) (*Engine, *scorer.MockScorer) {
	mock := scorer.NewMockScorer(responses...)
	eng := New(storage, mock, confidence.StaticSource{Assigned: 4, Completed: 2}, WithClock(fixedClock))
	return eng, mock
}

func TestRecordAttemptFirst(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage, scorer.MockResponse{Response: singleWord("rural", 55)})

	result, err := eng.RecordAttempt(context.Background(), RecordRequest{
		LearnerID:     "maya",
		UnitID:        "unit-7",
		ReferenceText: "rural",
	})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	if result.AttemptNumber != 1 {
		t.Errorf("attempt number = %d, want 1", result.AttemptNumber)
	}
	if result.Passed {
		t.Error("55 against threshold 70 should not pass")
	}

	prog, err := eng.Progress(context.Background(), "maya", "unit-7")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if prog.Attempts != 1 || prog.BestScore != 55 || prog.AvgScore != 55 {
		t.Errorf("progress = %d attempts best %v avg %v", prog.Attempts, prog.BestScore, prog.AvgScore)
	}

	word, err := eng.Mastery(context.Background(), "maya", "rural")
	if err != nil {
		t.Fatalf("Mastery: %v", err)
	}
	if word.Observations != 1 || word.AvgScore != 55 {
		t.Errorf("mastery = %d observations avg %v", word.Observations, word.AvgScore)
	}
	if word.Level != mastery.LevelLearning {
		t.Errorf("level = %s, want %s", word.Level, mastery.LevelLearning)
	}
}

func TestRecordAttemptNumbersAreGapless(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage,
		scorer.MockResponse{Response: singleWord("rural", 55)},
		scorer.MockResponse{Response: singleWord("rural", 82)},
		scorer.MockResponse{Response: singleWord("rural", 60)},
	)

	for want := 1; want <= 3; want++ {
		result, err := eng.RecordAttempt(context.Background(), RecordRequest{
			LearnerID: "maya", UnitID: "unit-7", ReferenceText: "rural",
		})
		if err != nil {
			t.Fatalf("attempt %d: %v", want, err)
		}
		if result.AttemptNumber != want {
			t.Errorf("attempt number = %d, want %d", result.AttemptNumber, want)
		}
	}

	prog, err := eng.Progress(context.Background(), "maya", "unit-7")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if prog.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", prog.Attempts)
	}
	if !prog.Passed {
		t.Error("pass on attempt 2 should stick through the failing attempt 3")
	}
	if prog.BestScore != 82 {
		t.Errorf("best = %v, want 82", prog.BestScore)
	}
}

func TestRecordAttemptIdempotentReplay(t *testing.T) {
	storage := newMemStorage()
	eng, mock := newTestEngine(storage,
		scorer.MockResponse{Response: singleWord("rural", 55)},
		scorer.MockResponse{Response: singleWord("rural", 90)},
	)

	req := RecordRequest{
		LearnerID:      "maya",
		UnitID:         "unit-7",
		ReferenceText:  "rural",
		IdempotencyKey: "key-1",
	}

	first, err := eng.RecordAttempt(context.Background(), req)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	replay, err := eng.RecordAttempt(context.Background(), req)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Errorf("scorer called %d times, want 1", mock.CallCount())
	}
	if replay.AttemptNumber != first.AttemptNumber || replay.OverallScore != first.OverallScore {
		t.Errorf("replay = %+v, want original %+v", replay, first)
	}
	if n, _ := storage.attempts.CountForUnit(context.Background(), "maya", "unit-7"); n != 1 {
		t.Errorf("event count = %d, want 1", n)
	}
}

func TestRecordAttemptKeyRaceFoldsOnce(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage,
		scorer.MockResponse{Response: singleWord("rural", 85)},
		scorer.MockResponse{Response: singleWord("rural", 85)},
	)

	req := RecordRequest{
		LearnerID:      "maya",
		UnitID:         "unit-7",
		ReferenceText:  "rural",
		IdempotencyKey: "key-1",
	}

	first, err := eng.RecordAttempt(context.Background(), req)
	if err != nil {
		t.Fatalf("first: %v", err)
	}

	// The fast-path lookup misses, as when a concurrent writer commits
	// the key between the lookup and the transactional append. The
	// append then hits the unique key and must resolve as a replay.
	storage.attempts.missFindByKey = 1
	replay, err := eng.RecordAttempt(context.Background(), req)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	if replay.AttemptNumber != first.AttemptNumber || replay.OverallScore != first.OverallScore {
		t.Errorf("replay = %+v, want original %+v", replay, first)
	}
	if n, _ := storage.attempts.CountForUnit(context.Background(), "maya", "unit-7"); n != 1 {
		t.Errorf("event count = %d, want 1", n)
	}

	word, err := eng.Mastery(context.Background(), "maya", "rural")
	if err != nil {
		t.Fatalf("Mastery: %v", err)
	}
	if word.Observations != 1 {
		t.Errorf("observations = %d, want 1 (a replayed attempt must not fold mastery again)", word.Observations)
	}
	if word.AvgScore != 85 {
		t.Errorf("avg = %v, want 85", word.AvgScore)
	}

	prog, err := eng.Progress(context.Background(), "maya", "unit-7")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if prog.Attempts != 1 {
		t.Errorf("progress attempts = %d, want 1", prog.Attempts)
	}
}

func TestRecordAttemptScoringFailureWritesNothing(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage,
		scorer.MockResponse{Err: &scorer.ErrUnavailable{Err: errors.New("timeout")}},
	)

	_, err := eng.RecordAttempt(context.Background(), RecordRequest{
		LearnerID: "maya", UnitID: "unit-7", ReferenceText: "rural",
	})
	if !errors.Is(err, ErrScoringUnavailable) {
		t.Fatalf("err = %v, want ErrScoringUnavailable", err)
	}

	if n, _ := storage.attempts.CountForUnit(context.Background(), "maya", "unit-7"); n != 0 {
		t.Errorf("event count = %d, want 0", n)
	}
	if _, err := eng.Progress(context.Background(), "maya", "unit-7"); !errors.Is(err, ErrNoData) {
		t.Errorf("progress err = %v, want ErrNoData", err)
	}
}

func TestRecordAttemptRetriesStaleVersion(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage,
		scorer.MockResponse{Response: singleWord("rural", 55)},
		scorer.MockResponse{Response: singleWord("rural", 82)},
	)

	if _, err := eng.RecordAttempt(context.Background(), RecordRequest{
		LearnerID: "maya", UnitID: "unit-7", ReferenceText: "rural",
	}); err != nil {
		t.Fatalf("seed attempt: %v", err)
	}

	storage.progress.staleUpdates = 1
	result, err := eng.RecordAttempt(context.Background(), RecordRequest{
		LearnerID: "maya", UnitID: "unit-7", ReferenceText: "rural",
	})
	if err != nil {
		t.Fatalf("RecordAttempt after stale: %v", err)
	}
	if result.AttemptNumber != 2 {
		t.Errorf("attempt number = %d, want 2", result.AttemptNumber)
	}
	if n, _ := storage.attempts.CountForUnit(context.Background(), "maya", "unit-7"); n != 2 {
		t.Errorf("event count = %d, want 2 (stale write must roll back)", n)
	}
}

func TestRecordAttemptConflictExhausted(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage,
		scorer.MockResponse{Response: singleWord("rural", 55)},
		scorer.MockResponse{Response: singleWord("rural", 82)},
	)

	if _, err := eng.RecordAttempt(context.Background(), RecordRequest{
		LearnerID: "maya", UnitID: "unit-7", ReferenceText: "rural",
	}); err != nil {
		t.Fatalf("seed attempt: %v", err)
	}

	storage.progress.staleUpdates = maxConflictRetries
	_, err := eng.RecordAttempt(context.Background(), RecordRequest{
		LearnerID: "maya", UnitID: "unit-7", ReferenceText: "rural",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestRecordAttemptInvalidThreshold(t *testing.T) {
	storage := newMemStorage()
	eng, mock := newTestEngine(storage)

	bad := 140.0
	_, err := eng.RecordAttempt(context.Background(), RecordRequest{
		LearnerID: "maya", UnitID: "unit-7", Threshold: &bad,
	})
	if !errors.Is(err, evaluate.ErrInvalidThreshold) {
		t.Fatalf("err = %v, want ErrInvalidThreshold", err)
	}
	if mock.CallCount() != 0 {
		t.Error("scorer must not be called for an invalid threshold")
	}
}

func TestRecordAttemptExplicitZeroThreshold(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage, scorer.MockResponse{Response: singleWord("rural", 55)})

	zero := 0.0
	result, err := eng.RecordAttempt(context.Background(), RecordRequest{
		LearnerID: "maya", UnitID: "unit-7", ReferenceText: "rural", Threshold: &zero,
	})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if result.Threshold != 0 {
		t.Errorf("threshold = %v, want the explicit 0, not the default", result.Threshold)
	}
	if !result.Passed {
		t.Error("any score passes a zero threshold")
	}
}

func TestRecordAttemptFoldsEachWord(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage, scorer.MockResponse{Response: &scorer.Response{
		UtteranceScore: 74,
		Words: []scorer.WordScore{
			{Text: "The", Score: 95},
			{Text: "rural", Score: 52},
		},
	}})

	if _, err := eng.RecordAttempt(context.Background(), RecordRequest{
		LearnerID: "maya", UnitID: "unit-7", ReferenceText: "The rural",
	}); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	words, err := eng.ListMastery(context.Background(), "maya")
	if err != nil {
		t.Fatalf("ListMastery: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("mastery records = %d, want 2", len(words))
	}
	if words[0].Word != "rural" || words[1].Word != "the" {
		t.Errorf("words = %q, %q; want lowercased rural, the", words[0].Word, words[1].Word)
	}
}

func TestResetClearsProgressNotNumbering(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage,
		scorer.MockResponse{Response: singleWord("rural", 55)},
		scorer.MockResponse{Response: singleWord("rural", 82)},
		scorer.MockResponse{Response: singleWord("rural", 61)},
	)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := eng.RecordAttempt(ctx, RecordRequest{
			LearnerID: "maya", UnitID: "unit-7", ReferenceText: "rural",
		}); err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
	}

	if err := eng.Reset(ctx, "maya", "unit-7"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, err := eng.Progress(ctx, "maya", "unit-7"); !errors.Is(err, ErrNoData) {
		t.Fatalf("progress after reset = %v, want ErrNoData", err)
	}

	result, err := eng.RecordAttempt(ctx, RecordRequest{
		LearnerID: "maya", UnitID: "unit-7", ReferenceText: "rural",
	})
	if err != nil {
		t.Fatalf("attempt after reset: %v", err)
	}
	if result.AttemptNumber != 3 {
		t.Errorf("attempt number = %d, want 3 (the event log survives a reset)", result.AttemptNumber)
	}

	prog, err := eng.Progress(ctx, "maya", "unit-7")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if prog.Attempts != 1 {
		t.Errorf("progress attempts = %d, want 1 after reset", prog.Attempts)
	}
}

func TestConfidenceNoData(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage)

	_, err := eng.Confidence(context.Background(), "nobody")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestConfidenceBlendsAndPersists(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage,
		scorer.MockResponse{Response: singleWord("rural", 80)},
		scorer.MockResponse{Response: singleWord("paris", 60)},
	)

	ctx := context.Background()
	for _, unit := range []string{"unit-1", "unit-2"} {
		if _, err := eng.RecordAttempt(ctx, RecordRequest{
			LearnerID: "maya", UnitID: unit, ReferenceText: "word",
		}); err != nil {
			t.Fatalf("attempt for %s: %v", unit, err)
		}
	}

	snap, err := eng.Confidence(ctx, "maya")
	if err != nil {
		t.Fatalf("Confidence: %v", err)
	}

	// Pronunciation 70, completion 2/4: 0.5*100*0.4 + 70*0.6 = 62.
	if snap.Pronunciation != 70 {
		t.Errorf("pronunciation = %v, want 70", snap.Pronunciation)
	}
	if snap.Score != 62 {
		t.Errorf("score = %d, want 62", snap.Score)
	}
	if snap.Label != "Developing" {
		t.Errorf("label = %q, want Developing", snap.Label)
	}

	stored, err := storage.confidence.Get(ctx, "maya")
	if err != nil || stored == nil {
		t.Fatalf("stored snapshot = %v, %v", stored, err)
	}
	if len(stored.History) != 1 {
		t.Errorf("history length = %d, want 1", len(stored.History))
	}
}

func TestWeakSpotsAggregates(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage,
		scorer.MockResponse{Response: &scorer.Response{
			UtteranceScore: 55,
			Words: []scorer.WordScore{
				{Text: "rural", Score: 40, Phonemes: []scorer.PhonemeScore{{Phoneme: "r", Score: 30}}},
			},
		}},
		scorer.MockResponse{Response: &scorer.Response{
			UtteranceScore: 58,
			Words: []scorer.WordScore{
				{Text: "paris", Score: 60},
			},
		}},
	)

	ctx := context.Background()
	for _, unit := range []string{"unit-1", "unit-2"} {
		if _, err := eng.RecordAttempt(ctx, RecordRequest{
			LearnerID: "maya", UnitID: unit, ReferenceText: "word",
		}); err != nil {
			t.Fatalf("attempt for %s: %v", unit, err)
		}
	}

	spots, err := eng.WeakSpots(ctx, "maya")
	if err != nil {
		t.Fatalf("WeakSpots: %v", err)
	}

	wantLetters := []string{"a", "i", "l", "p", "r", "s", "u"}
	if len(spots.Letters) != len(wantLetters) {
		t.Fatalf("letters = %v, want %v", spots.Letters, wantLetters)
	}
	for i, l := range wantLetters {
		if spots.Letters[i] != l {
			t.Errorf("letters[%d] = %q, want %q", i, spots.Letters[i], l)
		}
	}
	if len(spots.Phonemes) != 1 || spots.Phonemes[0] != "r" {
		t.Errorf("phonemes = %v, want [r]", spots.Phonemes)
	}

	// rural averaged 40, paris 60: rural is harder and sorts first.
	if len(spots.Words) != 2 {
		t.Fatalf("weak words = %d, want 2", len(spots.Words))
	}
	if spots.Words[0].Word != "rural" || spots.Words[1].Word != "paris" {
		t.Errorf("weak words = %q, %q; want rural first", spots.Words[0].Word, spots.Words[1].Word)
	}
}

func TestRefreshAll(t *testing.T) {
	storage := newMemStorage()
	eng, _ := newTestEngine(storage,
		scorer.MockResponse{Response: singleWord("rural", 70)},
		scorer.MockResponse{Response: singleWord("paris", 80)},
	)

	ctx := context.Background()
	if _, err := eng.RecordAttempt(ctx, RecordRequest{LearnerID: "maya", UnitID: "unit-1", ReferenceText: "rural"}); err != nil {
		t.Fatalf("seed maya: %v", err)
	}
	if _, err := eng.RecordAttempt(ctx, RecordRequest{LearnerID: "omar", UnitID: "unit-1", ReferenceText: "paris"}); err != nil {
		t.Fatalf("seed omar: %v", err)
	}

	refreshed, err := eng.RefreshAll(ctx)
	if err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}
	if refreshed != 2 {
		t.Errorf("refreshed = %d, want 2", refreshed)
	}
	for _, id := range []string{"maya", "omar"} {
		if snap, _ := storage.confidence.Get(ctx, id); snap == nil {
			t.Errorf("no snapshot stored for %s", id)
		}
	}
}
