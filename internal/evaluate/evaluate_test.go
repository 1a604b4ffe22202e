package evaluate

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/smehra/sayright/internal/scorer"
)

var testTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func singleWordResponse(word string, score float64) *scorer.Response {
	return &scorer.Response{
		UtteranceScore: score,
		Words:          []scorer.WordScore{{Text: word, Score: score}},
	}
}

func TestEvaluate_FailedRuralAttempt(t *testing.T) {
	resp := singleWordResponse("rural", 55)

	result, err := Evaluate("learner-1", "unit-rural", resp, 70, 0, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if result.Passed {
		t.Error("expected attempt to fail at threshold 70")
	}
	if result.AttemptNumber != 1 {
		t.Errorf("AttemptNumber = %d, want 1", result.AttemptNumber)
	}
	if result.OverallScore != 55 {
		t.Errorf("OverallScore = %v, want 55", result.OverallScore)
	}
	// "rural" dedupes to four letters.
	want := []string{"a", "l", "r", "u"}
	if !reflect.DeepEqual(result.WeakLetters, want) {
		t.Errorf("WeakLetters = %v, want %v", result.WeakLetters, want)
	}
}

func TestEvaluate_PassingAttemptHasNoWeakLetters(t *testing.T) {
	resp := singleWordResponse("rural", 82)

	result, err := Evaluate("learner-1", "unit-rural", resp, 70, 1, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if !result.Passed {
		t.Error("expected attempt to pass")
	}
	if result.AttemptNumber != 2 {
		t.Errorf("AttemptNumber = %d, want 2", result.AttemptNumber)
	}
	if len(result.WeakLetters) != 0 {
		t.Errorf("WeakLetters = %v, want empty", result.WeakLetters)
	}
}

func TestEvaluate_ScoreEqualToThresholdPasses(t *testing.T) {
	result, err := Evaluate("l", "u", singleWordResponse("hat", 70), 70, 0, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !result.Passed {
		t.Error("score equal to threshold must pass")
	}
}

func TestEvaluate_WeakLettersCaseFolded(t *testing.T) {
	resp := &scorer.Response{
		UtteranceScore: 40,
		Words:          []scorer.WordScore{{Text: "Paris", Score: 40}},
	}
	result, err := Evaluate("l", "u", resp, 70, 0, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := []string{"a", "i", "p", "r", "s"}
	if !reflect.DeepEqual(result.WeakLetters, want) {
		t.Errorf("WeakLetters = %v, want %v", result.WeakLetters, want)
	}
}

func TestEvaluate_NonLettersSkipped(t *testing.T) {
	resp := &scorer.Response{
		UtteranceScore: 40,
		Words:          []scorer.WordScore{{Text: "don't", Score: 40}},
	}
	result, err := Evaluate("l", "u", resp, 70, 0, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := []string{"d", "n", "o", "t"}
	if !reflect.DeepEqual(result.WeakLetters, want) {
		t.Errorf("WeakLetters = %v, want %v", result.WeakLetters, want)
	}
}

func TestEvaluate_WeakPhonemes(t *testing.T) {
	resp := &scorer.Response{
		UtteranceScore: 75,
		Words: []scorer.WordScore{
			{Text: "rural", Score: 75, Phonemes: []scorer.PhonemeScore{
				{Phoneme: "r", Score: 55},
				{Phoneme: "ʊə", Score: 90},
				{Phoneme: "l", Score: 69.9},
			}},
		},
	}
	result, err := Evaluate("l", "u", resp, 70, 0, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := []string{"l", "r"}
	if !reflect.DeepEqual(result.WeakPhonemes, want) {
		t.Errorf("WeakPhonemes = %v, want %v", result.WeakPhonemes, want)
	}
	// The word itself passed, so no weak letters despite weak phonemes.
	if len(result.WeakLetters) != 0 {
		t.Errorf("WeakLetters = %v, want empty", result.WeakLetters)
	}
}

func TestEvaluate_MultiWordPhrase(t *testing.T) {
	resp := &scorer.Response{
		UtteranceScore: 68,
		Words: []scorer.WordScore{
			{Text: "red", Score: 90},
			{Text: "lorry", Score: 45},
		},
	}
	result, err := Evaluate("l", "u", resp, 70, 2, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.Passed {
		t.Error("expected fail at 68")
	}
	want := []string{"l", "o", "r", "y"}
	if !reflect.DeepEqual(result.WeakLetters, want) {
		t.Errorf("WeakLetters = %v, want %v", result.WeakLetters, want)
	}
}

func TestEvaluate_UtteranceScoreClamped(t *testing.T) {
	resp := &scorer.Response{UtteranceScore: 104.2}
	result, err := Evaluate("l", "u", resp, 70, 0, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.OverallScore != 100 {
		t.Errorf("OverallScore = %v, want clamped to 100", result.OverallScore)
	}

	resp = &scorer.Response{UtteranceScore: -3}
	result, err = Evaluate("l", "u", resp, 70, 0, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want clamped to 0", result.OverallScore)
	}
}

func TestEvaluate_InvalidThreshold(t *testing.T) {
	for _, threshold := range []float64{-1, 100.5, 170} {
		_, err := Evaluate("l", "u", singleWordResponse("a", 50), threshold, 0, testTime)
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("threshold %v: err = %v, want ErrInvalidThreshold", threshold, err)
		}
	}
}

func TestEvaluate_InvalidWordScore(t *testing.T) {
	resp := &scorer.Response{
		UtteranceScore: 50,
		Words:          []scorer.WordScore{{Text: "a", Score: 101}},
	}
	_, err := Evaluate("l", "u", resp, 70, 0, testTime)
	if !errors.Is(err, ErrInvalidScore) {
		t.Errorf("err = %v, want ErrInvalidScore", err)
	}
}

func TestEvaluate_InvalidPhonemeScore(t *testing.T) {
	resp := &scorer.Response{
		UtteranceScore: 50,
		Words: []scorer.WordScore{
			{Text: "a", Score: 50, Phonemes: []scorer.PhonemeScore{{Phoneme: "æ", Score: -2}}},
		},
	}
	_, err := Evaluate("l", "u", resp, 70, 0, testTime)
	if !errors.Is(err, ErrInvalidScore) {
		t.Errorf("err = %v, want ErrInvalidScore", err)
	}
}

func TestEvaluate_FluencyPassthrough(t *testing.T) {
	fluency := 64.5
	resp := &scorer.Response{UtteranceScore: 80, FluencyScore: &fluency}
	result, err := Evaluate("l", "u", resp, 70, 0, testTime)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.FluencyScore == nil || *result.FluencyScore != 64.5 {
		t.Errorf("FluencyScore = %v, want 64.5", result.FluencyScore)
	}
}
