package confidence

import (
	"testing"
	"time"
)

var confTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestCompletionRate(t *testing.T) {
	cases := []struct {
		completed, assigned int
		want                float64
	}{
		{0, 0, 0}, // no assignments is 0%, not a division error
		{5, 0, 0},
		{0, 10, 0},
		{5, 10, 0.5},
		{10, 10, 1},
		{12, 10, 1}, // over-completion clamps
	}
	for _, tc := range cases {
		if got := CompletionRate(tc.completed, tc.assigned); got != tc.want {
			t.Errorf("CompletionRate(%d, %d) = %v, want %v", tc.completed, tc.assigned, got, tc.want)
		}
	}
}

func TestCompute(t *testing.T) {
	cases := []struct {
		rate          float64
		pronunciation float64
		want          int
	}{
		{0, 0, 0},
		{1, 100, 100},
		{0.5, 70, 62},  // 0.5*100*0.4 + 70*0.6 = 20 + 42
		{1, 0, 40},     // completion alone caps at 40
		{0, 100, 60},   // quality alone caps at 60
		{0.75, 68, 71}, // 30 + 40.8 rounds to 71
	}
	for _, tc := range cases {
		if got := Compute(tc.rate, tc.pronunciation); got != tc.want {
			t.Errorf("Compute(%v, %v) = %d, want %d", tc.rate, tc.pronunciation, got, tc.want)
		}
	}
}

func TestLabelFor_TotalAndMonotonic(t *testing.T) {
	rank := map[string]int{
		"Getting started": 0,
		"Emerging":        1,
		"Developing":      2,
		"Confident":       3,
	}
	prev := -1
	for score := 0; score <= 100; score++ {
		label := LabelFor(score)
		r, ok := rank[label]
		if !ok {
			t.Fatalf("LabelFor(%d) = %q, unknown label", score, label)
		}
		if r < prev {
			t.Fatalf("LabelFor(%d) = %q, worse than previous score's label", score, label)
		}
		prev = r
	}
}

func entry(score int, age time.Duration) Entry {
	return Entry{Score: score, ComputedAt: confTime.Add(-age)}
}

func TestClassifyTrend_AgainstWeekOldBaseline(t *testing.T) {
	history := []Entry{
		entry(50, 20*24*time.Hour),
		entry(60, 8*24*time.Hour), // most recent entry >= 7 days old
		entry(72, 2*24*time.Hour), // too fresh to be the baseline
	}

	if got := ClassifyTrend(history, 65, confTime); got != TrendImproving {
		t.Errorf("trend(65 vs 60) = %s, want improving", got)
	}
	if got := ClassifyTrend(history, 55, confTime); got != TrendDeclining {
		t.Errorf("trend(55 vs 60) = %s, want declining", got)
	}
	if got := ClassifyTrend(history, 60, confTime); got != TrendStable {
		t.Errorf("trend(60 vs 60) = %s, want stable", got)
	}
}

func TestClassifyTrend_FallsBackToOldestEntry(t *testing.T) {
	// Nothing is a week old yet; the oldest entry anchors the trend.
	history := []Entry{
		entry(40, 3*24*time.Hour),
		entry(55, 24*time.Hour),
	}
	if got := ClassifyTrend(history, 50, confTime); got != TrendImproving {
		t.Errorf("trend(50 vs oldest 40) = %s, want improving", got)
	}
}

func TestClassifyTrend_EmptyHistoryIsStable(t *testing.T) {
	if got := ClassifyTrend(nil, 80, confTime); got != TrendStable {
		t.Errorf("trend = %s, want stable", got)
	}
}

func TestBuildSnapshot(t *testing.T) {
	prior := []Entry{entry(50, 10*24*time.Hour)}

	snap := BuildSnapshot("learner-1", 80, 6, 10, prior, confTime)

	if snap.Score != Compute(0.6, 80) {
		t.Errorf("Score = %d", snap.Score)
	}
	if snap.CompletionRate != 0.6 {
		t.Errorf("CompletionRate = %v, want 0.6", snap.CompletionRate)
	}
	if snap.Trend != TrendImproving {
		t.Errorf("Trend = %s, want improving (72 vs 50)", snap.Trend)
	}
	if snap.Label != LabelFor(snap.Score) {
		t.Errorf("Label = %q", snap.Label)
	}
	if len(snap.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(snap.History))
	}
	last := snap.History[len(snap.History)-1]
	if last.Score != snap.Score || !last.ComputedAt.Equal(confTime) {
		t.Errorf("appended entry = %+v", last)
	}
}

func TestBuildSnapshot_HistoryCapped(t *testing.T) {
	var prior []Entry
	for i := range 25 {
		prior = append(prior, Entry{Score: i, ComputedAt: confTime.Add(time.Duration(i-30) * 24 * time.Hour)})
	}

	snap := BuildSnapshot("learner-1", 90, 1, 1, prior, confTime)
	if len(snap.History) != HistoryCap {
		t.Fatalf("history length = %d, want %d", len(snap.History), HistoryCap)
	}
	// Oldest entries evicted; newest entry is this computation.
	if snap.History[0].Score != 6 {
		t.Errorf("oldest retained = %d, want 6", snap.History[0].Score)
	}
	if snap.History[HistoryCap-1].Score != snap.Score {
		t.Errorf("newest = %d, want %d", snap.History[HistoryCap-1].Score, snap.Score)
	}
}
