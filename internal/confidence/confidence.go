// Package confidence blends completion and pronunciation-quality signals
// into a single 0-100 learner confidence score with a banded label and a
// trend classification over a capped score history.
package confidence

import (
	"math"
	"time"

	"github.com/smehra/sayright/internal/ring"
)

// Blend weights. Fixed product decision: completion counts for 40% of the
// score, pronunciation quality for 60%.
const (
	WeightCompletion = 0.4
	WeightQuality    = 0.6
)

const (
	// HistoryCap bounds the per-learner confidence history.
	HistoryCap = 20

	// trendBaselineAge is how far back the trend baseline should reach.
	trendBaselineAge = 7 * 24 * time.Hour
)

// Trend classifies the direction of a learner's confidence.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Entry is one historical confidence computation.
type Entry struct {
	Score      int       `json:"score"`
	ComputedAt time.Time `json:"computed_at"`
}

// Snapshot is the result of one confidence computation.
type Snapshot struct {
	LearnerID string

	// Score is the blended 0-100 confidence indicator.
	Score int

	// Pronunciation is the quality sub-score (0-100): the mean running
	// average across the learner's tracked units.
	Pronunciation float64

	// CompletionRate is the fraction of assigned practice units completed.
	CompletionRate float64

	Label string
	Trend Trend

	// History holds the most recent computations including this one,
	// oldest first, capped at HistoryCap.
	History []Entry

	ComputedAt time.Time
}

// CompletionRate computes completed/assigned, treating an empty assignment
// list as 0% rather than undefined.
func CompletionRate(completed, assigned int) float64 {
	if assigned <= 0 {
		return 0
	}
	rate := float64(completed) / float64(assigned)
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// Compute blends the completion rate (0-1) and pronunciation quality
// (0-100) into the rounded, clamped confidence score.
func Compute(completionRate, pronunciation float64) int {
	blended := completionRate*100*WeightCompletion + pronunciation*WeightQuality
	score := int(math.Round(blended))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// LabelFor bands a confidence score into a display label. The banding is
// total and monotonic: a higher score never yields a worse label.
func LabelFor(score int) string {
	switch {
	case score >= 80:
		return "Confident"
	case score >= 60:
		return "Developing"
	case score >= 40:
		return "Emerging"
	default:
		return "Getting started"
	}
}

// ClassifyTrend compares the new score against a baseline from the prior
// history: the most recent entry at least seven days old, or the oldest
// entry if none is that old. An empty history is stable.
func ClassifyTrend(history []Entry, score int, now time.Time) Trend {
	if len(history) == 0 {
		return TrendStable
	}

	cutoff := now.Add(-trendBaselineAge)
	baseline := history[0]
	for _, e := range history {
		if !e.ComputedAt.After(cutoff) {
			baseline = e
		}
	}

	switch {
	case score > baseline.Score:
		return TrendImproving
	case score < baseline.Score:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// BuildSnapshot runs a full confidence computation: blend, band, classify
// the trend against prior history, and append the new entry to the capped
// history.
func BuildSnapshot(learnerID string, pronunciation float64, completed, assigned int, prior []Entry, now time.Time) *Snapshot {
	rate := CompletionRate(completed, assigned)
	score := Compute(rate, pronunciation)
	trend := ClassifyTrend(prior, score, now)

	history := ring.FromSlice(HistoryCap, prior)
	history.Append(Entry{Score: score, ComputedAt: now})

	return &Snapshot{
		LearnerID:      learnerID,
		Score:          score,
		Pronunciation:  pronunciation,
		CompletionRate: rate,
		Label:          LabelFor(score),
		Trend:          trend,
		History:        history.Items(),
		ComputedAt:     now,
	}
}
