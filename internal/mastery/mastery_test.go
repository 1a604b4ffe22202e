package mastery

import (
	"math"
	"testing"
	"time"
)

var obsTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestClassifyLevel(t *testing.T) {
	cases := []struct {
		avg       float64
		successes int
		want      Level
	}{
		{92, 3, LevelMastered},
		{90, 3, LevelMastered},
		{95, 2, LevelPracticing}, // high average alone is not mastery
		{89.9, 10, LevelPracticing},
		{70, 0, LevelPracticing},
		{69.9, 5, LevelLearning},
		{50, 0, LevelLearning},
		{49.9, 2, LevelStruggling},
		{0, 0, LevelStruggling},
	}
	for _, tc := range cases {
		if got := ClassifyLevel(tc.avg, tc.successes); got != tc.want {
			t.Errorf("ClassifyLevel(%v, %d) = %s, want %s", tc.avg, tc.successes, got, tc.want)
		}
	}
}

func observeScores(s *State, scores ...float64) *State {
	for i, score := range scores {
		s = Observe(s, "learner-1", "rural", score, "drill-1", obsTime.Add(time.Duration(i)*time.Minute))
	}
	return s
}

func TestObserve_FirstObservationCapturesInitialDifficulty(t *testing.T) {
	s := observeScores(nil, 40)

	if s.AvgScore != 40 {
		t.Errorf("AvgScore = %v, want 40", s.AvgScore)
	}
	if s.Difficulty != 60 {
		t.Errorf("Difficulty = %v, want 60", s.Difficulty)
	}
	if s.InitialDifficulty != 60 {
		t.Errorf("InitialDifficulty = %v, want 60", s.InitialDifficulty)
	}
	if s.ImprovementRate != 0 {
		t.Errorf("ImprovementRate = %v, want 0", s.ImprovementRate)
	}
	if s.Level != LevelStruggling {
		t.Errorf("Level = %s, want struggling", s.Level)
	}
}

func TestObserve_InitialDifficultyImmutable(t *testing.T) {
	s := observeScores(nil, 40, 80, 95, 95)
	if s.InitialDifficulty != 60 {
		t.Errorf("InitialDifficulty = %v, want 60 (from first observation)", s.InitialDifficulty)
	}
}

func TestObserve_ImprovementRate(t *testing.T) {
	// First score 40 -> initial difficulty 60. Scores 40, 80 -> avg 60,
	// difficulty 40. Improvement = (60-40)/60*100.
	s := observeScores(nil, 40, 80)
	want := (60.0 - 40.0) / 60.0 * 100.0
	if math.Abs(s.ImprovementRate-want) > 1e-9 {
		t.Errorf("ImprovementRate = %v, want %v", s.ImprovementRate, want)
	}
}

func TestObserve_ImprovementRateZeroInitialDifficulty(t *testing.T) {
	// Perfect first score leaves nothing to improve; the rate must stay
	// defined at 0 even when later scores drop.
	s := observeScores(nil, 100, 50)
	if s.ImprovementRate != 0 {
		t.Errorf("ImprovementRate = %v, want 0", s.ImprovementRate)
	}
}

func TestObserve_NegativeImprovementOnDecline(t *testing.T) {
	s := observeScores(nil, 80, 20) // initial difficulty 20, current 50
	if s.ImprovementRate >= 0 {
		t.Errorf("ImprovementRate = %v, want negative", s.ImprovementRate)
	}
}

func TestObserve_MasteryRequiresThreeSuccesses(t *testing.T) {
	s := observeScores(nil, 95, 95)
	if s.Level == LevelMastered {
		t.Fatal("two successes must not reach mastered")
	}
	s = observeScores(s, 95)
	if s.Level != LevelMastered {
		t.Errorf("Level = %s, want mastered after three successes at avg 95", s.Level)
	}
	if s.MasteredAt == nil {
		t.Error("MasteredAt not set on first mastery")
	}
}

// Mastery level is live and can regress; the mastered-at marker is
// historical and survives.
func TestObserve_RegressionKeepsMasteredAt(t *testing.T) {
	s := observeScores(nil, 92, 93, 94)
	if s.Level != LevelMastered {
		t.Fatalf("Level = %s, want mastered", s.Level)
	}
	masteredAt := *s.MasteredAt

	// Drag the average below 90.
	s = observeScores(s, 30, 30, 30)
	if s.Level == LevelMastered {
		t.Errorf("Level = %s, want regression below mastered", s.Level)
	}
	if s.MasteredAt == nil || !s.MasteredAt.Equal(masteredAt) {
		t.Errorf("MasteredAt = %v, want unchanged %v", s.MasteredAt, masteredAt)
	}
}

func TestObserve_HistoryCappedAtTwenty(t *testing.T) {
	var s *State
	for i := range 25 {
		s = Observe(s, "learner-1", "rural", float64(i), "drill-1", obsTime.Add(time.Duration(i)*time.Minute))
	}
	if len(s.History) != HistoryCap {
		t.Fatalf("history length = %d, want %d", len(s.History), HistoryCap)
	}
	// After 25 appends exactly the most recent 20 remain, oldest first.
	if s.History[0].Score != 5 {
		t.Errorf("oldest retained score = %v, want 5", s.History[0].Score)
	}
	if s.History[19].Score != 24 {
		t.Errorf("newest score = %v, want 24", s.History[19].Score)
	}
}

func TestObserve_HistoryRecordsSourceDrill(t *testing.T) {
	s := Observe(nil, "learner-1", "rural", 66, "drill-42", obsTime)
	if len(s.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(s.History))
	}
	entry := s.History[0]
	if entry.DrillID != "drill-42" || entry.Score != 66 || !entry.Timestamp.Equal(obsTime) {
		t.Errorf("entry = %+v", entry)
	}
}

func TestObserve_RunningAverageMatchesNaiveMean(t *testing.T) {
	scores := []float64{70, 0, 100, 45, 88, 91, 13}
	var s *State
	sum := 0.0
	for i, score := range scores {
		s = observeScores(s, score)
		sum += score
		naive := sum / float64(i+1)
		if math.Abs(s.AvgScore-naive) > 1e-9 {
			t.Fatalf("after %d observations: incremental %v, naive %v", i+1, s.AvgScore, naive)
		}
	}
}

func TestObserve_DoesNotMutateInput(t *testing.T) {
	s1 := observeScores(nil, 50)
	obs := s1.Observations

	observeScores(s1, 90)

	if s1.Observations != obs {
		t.Error("Observe mutated its input state")
	}
}
