// Package mastery derives a qualitative mastery level and difficulty trend
// for each (learner, word) pair from its running score statistics. Mastery
// is wider than pronunciation: any drill type that produces a 0-100 score
// for a word folds into the same record.
package mastery

import "time"

// Level is a word's position in the mastery lifecycle.
type Level string

const (
	LevelStruggling Level = "struggling"
	LevelLearning   Level = "learning"
	LevelPracticing Level = "practicing"
	LevelMastered   Level = "mastered"
)

const (
	// HistoryCap bounds the per-word score history.
	HistoryCap = 20

	// SuccessThreshold is the score at or above which an observation
	// counts as a success for mastery purposes.
	SuccessThreshold = 70.0
)

// Classification thresholds, evaluated top-down; first match wins.
const (
	masteredAvg       = 90.0
	masteredSuccesses = 3
	practicingAvg     = 70.0
	learningAvg       = 50.0
)

// Observation is one scored encounter with a word.
type Observation struct {
	Timestamp time.Time `json:"timestamp"`
	Score     float64   `json:"score"`
	DrillID   string    `json:"drill_id"`
}

// State is the mastery record for a (learner, word) pair.
type State struct {
	LearnerID string
	Word      string

	// Version is the storage concurrency token. Zero means the state has
	// not been persisted yet.
	Version int64

	Observations int
	Successes    int
	AvgScore     float64

	// Difficulty is the inverse of the running average (100 - avg).
	Difficulty float64

	// InitialDifficulty is captured on the first observation and never
	// recomputed; it anchors the improvement trend.
	InitialDifficulty float64

	// ImprovementRate is the signed percentage change from the initial
	// difficulty to the current one.
	ImprovementRate float64

	// Level is live: it can regress from mastered if the average slips.
	Level Level

	// History holds the most recent observations, oldest first, capped
	// at HistoryCap.
	History []Observation

	// MasteredAt marks when the word first reached mastered. It survives
	// later regression; the UI shows "first mastered on" even when current
	// performance has slipped.
	MasteredAt *time.Time
}

// ClassifyLevel maps a running average and success count to a mastery
// level. Rows are evaluated top-down; the first match wins.
func ClassifyLevel(avg float64, successes int) Level {
	switch {
	case avg >= masteredAvg && successes >= masteredSuccesses:
		return LevelMastered
	case avg >= practicingAvg:
		return LevelPracticing
	case avg >= learningAvg:
		return LevelLearning
	default:
		return LevelStruggling
	}
}
