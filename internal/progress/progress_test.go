package progress

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/smehra/sayright/internal/evaluate"
)

var baseTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func attempt(score float64, passed bool, weakLetters []string) *evaluate.AttemptResult {
	return &evaluate.AttemptResult{
		LearnerID:    "learner-1",
		UnitID:       "unit-rural",
		OverallScore: score,
		Threshold:    70,
		Passed:       passed,
		WeakLetters:  weakLetters,
	}
}

func TestApply_FirstAttemptInitializes(t *testing.T) {
	s := Apply(nil, attempt(55, false, []string{"a", "l", "r", "u"}), baseTime)

	if s.LearnerID != "learner-1" || s.UnitID != "unit-rural" {
		t.Errorf("pair = %s/%s", s.LearnerID, s.UnitID)
	}
	if s.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", s.Attempts)
	}
	if s.BestScore != 55 || s.LastScore != 55 || s.AvgScore != 55 {
		t.Errorf("scores = best %v last %v avg %v, want all 55", s.BestScore, s.LastScore, s.AvgScore)
	}
	if s.Passed || s.PassedAt != nil {
		t.Error("first failing attempt must not set passed")
	}
	if s.LastAttemptAt == nil || !s.LastAttemptAt.Equal(baseTime) {
		t.Errorf("LastAttemptAt = %v", s.LastAttemptAt)
	}
}

// Mirrors the three-attempt "rural" walkthrough: fail at 55, pass at 82,
// regress to 60.
func TestApply_RuralScenario(t *testing.T) {
	t1 := baseTime
	t2 := baseTime.Add(time.Hour)
	t3 := baseTime.Add(2 * time.Hour)

	s := Apply(nil, attempt(55, false, []string{"a", "l", "r", "u"}), t1)
	s = Apply(s, attempt(82, true, nil), t2)

	if !s.Passed {
		t.Fatal("expected passed after attempt 2")
	}
	if s.PassedAt == nil || !s.PassedAt.Equal(t2) {
		t.Errorf("PassedAt = %v, want %v", s.PassedAt, t2)
	}
	if s.BestScore != 82 {
		t.Errorf("BestScore = %v, want 82", s.BestScore)
	}
	if s.AvgScore != 68.5 {
		t.Errorf("AvgScore = %v, want 68.5", s.AvgScore)
	}

	// Regression: pass and best survive, average absorbs the dip.
	s = Apply(s, attempt(60, false, []string{"a", "l", "r", "u"}), t3)
	if !s.Passed {
		t.Error("passed must stay true after regression")
	}
	if !s.PassedAt.Equal(t2) {
		t.Errorf("PassedAt changed to %v, want %v", s.PassedAt, t2)
	}
	if s.BestScore != 82 {
		t.Errorf("BestScore = %v, want 82", s.BestScore)
	}
	if s.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", s.Attempts)
	}
	wantAvg := (55.0 + 82.0 + 60.0) / 3.0
	if math.Abs(s.AvgScore-wantAvg) > 1e-9 {
		t.Errorf("AvgScore = %v, want %v", s.AvgScore, wantAvg)
	}
}

func TestApply_RunningAverageMatchesNaiveMean(t *testing.T) {
	scores := []float64{0, 100, 73, 55, 82, 60, 91, 14, 100, 67, 33, 50}

	var s *State
	sum := 0.0
	for i, score := range scores {
		s = Apply(s, attempt(score, false, nil), baseTime)
		sum += score
		naive := sum / float64(i+1)
		if math.Abs(s.AvgScore-naive) > 1e-9 {
			t.Fatalf("after %d attempts: incremental %v, naive %v", i+1, s.AvgScore, naive)
		}
	}
}

func TestApply_BestScoreIsMaxRegardlessOfOrder(t *testing.T) {
	orders := [][]float64{
		{10, 50, 90, 30},
		{90, 10, 30, 50},
		{30, 90, 50, 10},
	}
	for _, scores := range orders {
		var s *State
		for _, score := range scores {
			s = Apply(s, attempt(score, false, nil), baseTime)
		}
		if s.BestScore != 90 {
			t.Errorf("order %v: BestScore = %v, want 90", scores, s.BestScore)
		}
	}
}

func TestApply_WeakSetsOnlyGrow(t *testing.T) {
	s := Apply(nil, attempt(40, false, []string{"r", "u"}), baseTime)
	s = Apply(s, attempt(95, true, nil), baseTime) // clean attempt adds nothing
	if want := []string{"r", "u"}; !reflect.DeepEqual(s.WeakLetters, want) {
		t.Errorf("WeakLetters = %v, want %v", s.WeakLetters, want)
	}

	s = Apply(s, attempt(40, false, []string{"a", "r"}), baseTime)
	if want := []string{"a", "r", "u"}; !reflect.DeepEqual(s.WeakLetters, want) {
		t.Errorf("WeakLetters = %v, want %v", s.WeakLetters, want)
	}
}

func TestApply_WeakPhonemesUnion(t *testing.T) {
	r := attempt(40, false, nil)
	r.WeakPhonemes = []string{"r", "ʊə"}
	s := Apply(nil, r, baseTime)

	r2 := attempt(45, false, nil)
	r2.WeakPhonemes = []string{"l", "r"}
	s = Apply(s, r2, baseTime)

	if want := []string{"l", "r", "ʊə"}; !reflect.DeepEqual(s.WeakPhonemes, want) {
		t.Errorf("WeakPhonemes = %v, want %v", s.WeakPhonemes, want)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	s1 := Apply(nil, attempt(50, false, []string{"x"}), baseTime)
	attempts, best := s1.Attempts, s1.BestScore

	Apply(s1, attempt(99, true, []string{"y"}), baseTime)

	if s1.Attempts != attempts || s1.BestScore != best {
		t.Error("Apply mutated its input state")
	}
	if len(s1.WeakLetters) != 1 {
		t.Errorf("input WeakLetters = %v, want [x]", s1.WeakLetters)
	}
}
