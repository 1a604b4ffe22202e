// Package progress maintains cumulative pronunciation progress for one
// (learner, target unit) pair. Apply folds attempt results into the state
// without ever storing the full score list; the running average is updated
// incrementally.
package progress

import (
	"sort"
	"time"

	"github.com/smehra/sayright/internal/evaluate"
)

// State is the mutable progress record for a (learner, unit) pair.
type State struct {
	LearnerID string
	UnitID    string

	// Version is the storage concurrency token. Zero means the state has
	// not been persisted yet.
	Version int64

	Attempts  int
	BestScore float64
	LastScore float64

	// AvgScore is the running mean of all attempt scores, updated
	// incrementally on each fold.
	AvgScore float64

	// WeakLetters and WeakPhonemes accumulate across attempts. They only
	// grow; entries are removed solely by an explicit reset.
	WeakLetters  []string
	WeakPhonemes []string

	Passed        bool
	PassedAt      *time.Time
	LastAttemptAt *time.Time
}

// Apply folds an attempt result into the state and returns the updated
// copy. A nil state starts a fresh record for the result's pair.
func Apply(s *State, r *evaluate.AttemptResult, now time.Time) *State {
	var next State
	if s == nil {
		next = State{LearnerID: r.LearnerID, UnitID: r.UnitID}
	} else {
		next = *s
	}

	next.Attempts++
	// Incremental mean: equivalent to averaging the full score sequence.
	next.AvgScore += (r.OverallScore - next.AvgScore) / float64(next.Attempts)

	if r.OverallScore > next.BestScore {
		next.BestScore = r.OverallScore
	}
	next.LastScore = r.OverallScore

	next.WeakLetters = union(next.WeakLetters, r.WeakLetters)
	next.WeakPhonemes = union(next.WeakPhonemes, r.WeakPhonemes)

	if r.Passed && !next.Passed {
		next.Passed = true
		passedAt := now
		next.PassedAt = &passedAt
	}
	lastAt := now
	next.LastAttemptAt = &lastAt

	return &next
}

// union merges two sorted string sets into a new sorted, deduplicated
// slice. The inputs are not modified.
func union(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, v := range a {
		seen[v] = struct{}{}
	}
	for _, v := range b {
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
