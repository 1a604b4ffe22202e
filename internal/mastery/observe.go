package mastery

import (
	"time"

	"github.com/smehra/sayright/internal/ring"
)

// Observe folds one scored encounter into the state and returns the
// updated copy. A nil state starts a fresh record for the pair.
func Observe(s *State, learnerID, word string, score float64, drillID string, now time.Time) *State {
	var next State
	if s == nil {
		next = State{LearnerID: learnerID, Word: word}
	} else {
		next = *s
	}

	next.Observations++
	next.AvgScore += (score - next.AvgScore) / float64(next.Observations)
	if score >= SuccessThreshold {
		next.Successes++
	}

	next.Difficulty = 100 - next.AvgScore
	if next.Observations == 1 {
		next.InitialDifficulty = next.Difficulty
	}
	next.ImprovementRate = improvementRate(next.InitialDifficulty, next.Difficulty)

	history := ring.FromSlice(HistoryCap, next.History)
	history.Append(Observation{Timestamp: now, Score: score, DrillID: drillID})
	next.History = history.Items()

	next.Level = ClassifyLevel(next.AvgScore, next.Successes)
	if next.Level == LevelMastered && next.MasteredAt == nil {
		masteredAt := now
		next.MasteredAt = &masteredAt
	}

	return &next
}

// improvementRate returns the signed percentage drop from the initial
// difficulty, defined as 0 when there was no initial difficulty.
func improvementRate(initial, current float64) float64 {
	if initial == 0 {
		return 0
	}
	return (initial - current) / initial * 100
}
