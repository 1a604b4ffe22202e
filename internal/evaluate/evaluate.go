// Package evaluate turns a normalized scoring response into a structured
// attempt result: pass/fail against the threshold, weak letters, and weak
// phonemes. Evaluation is pure; it never touches storage or the network.
package evaluate

import (
	"errors"
	"fmt"
	"sort"
	"time"
	"unicode"

	"github.com/smehra/sayright/internal/scorer"
)

// DefaultThreshold is the passing threshold used when the caller does not
// supply one.
const DefaultThreshold = 70.0

var (
	// ErrInvalidThreshold reports a passing threshold outside [0,100].
	ErrInvalidThreshold = errors.New("threshold outside [0,100]")

	// ErrInvalidScore reports a word or phoneme score outside [0,100].
	ErrInvalidScore = errors.New("score outside [0,100]")
)

// AttemptResult is the immutable outcome of one pronunciation attempt.
type AttemptResult struct {
	LearnerID     string
	UnitID        string
	AttemptNumber int
	Timestamp     time.Time

	OverallScore float64
	FluencyScore *float64
	Threshold    float64
	Passed       bool

	// Words holds the per-word scores in reading order.
	Words []scorer.WordScore

	// WeakLetters holds the lowercased letters of every word that scored
	// below the threshold, sorted and deduplicated. This deliberately flags
	// all letters of an under-threshold word rather than isolating the
	// mispronounced ones; finer per-letter attribution would need vendor
	// data we don't consume today.
	WeakLetters []string

	// WeakPhonemes holds the symbols of phonemes that scored below the
	// threshold, sorted and deduplicated.
	WeakPhonemes []string
}

// Evaluate builds an AttemptResult from a scoring response.
// priorAttempts is the count of attempts already recorded for this
// (learner, unit) pair; the new attempt is numbered priorAttempts+1.
func Evaluate(learnerID, unitID string, resp *scorer.Response, threshold float64, priorAttempts int, now time.Time) (*AttemptResult, error) {
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	if err := validateScores(resp); err != nil {
		return nil, err
	}

	overall := clamp(resp.UtteranceScore, 0, 100)

	weakLetters := make(map[string]struct{})
	weakPhonemes := make(map[string]struct{})
	for _, w := range resp.Words {
		if w.Score < threshold {
			for _, r := range w.Text {
				if unicode.IsLetter(r) {
					weakLetters[string(unicode.ToLower(r))] = struct{}{}
				}
			}
		}
		for _, p := range w.Phonemes {
			if p.Score < threshold {
				weakPhonemes[p.Phoneme] = struct{}{}
			}
		}
	}

	return &AttemptResult{
		LearnerID:     learnerID,
		UnitID:        unitID,
		AttemptNumber: priorAttempts + 1,
		Timestamp:     now,
		OverallScore:  overall,
		FluencyScore:  resp.FluencyScore,
		Threshold:     threshold,
		Passed:        overall >= threshold,
		Words:         resp.Words,
		WeakLetters:   sortedKeys(weakLetters),
		WeakPhonemes:  sortedKeys(weakPhonemes),
	}, nil
}

// validateScores rejects word or phoneme scores outside [0,100]. The
// utterance-level score is clamped instead, matching how the product
// treats slightly-out-of-range vendor aggregates.
func validateScores(resp *scorer.Response) error {
	if resp.FluencyScore != nil && (*resp.FluencyScore < 0 || *resp.FluencyScore > 100) {
		return fmt.Errorf("%w: fluency score %v", ErrInvalidScore, *resp.FluencyScore)
	}
	for _, w := range resp.Words {
		if w.Score < 0 || w.Score > 100 {
			return fmt.Errorf("%w: word %q scored %v", ErrInvalidScore, w.Text, w.Score)
		}
		for _, p := range w.Phonemes {
			if p.Score < 0 || p.Score > 100 {
				return fmt.Errorf("%w: phoneme %q scored %v", ErrInvalidScore, p.Phoneme, p.Score)
			}
		}
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
