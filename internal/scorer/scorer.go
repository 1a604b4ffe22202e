// Package scorer talks to the external speech-scoring service. The vendor
// API is best-effort and its JSON is loosely typed; everything is validated
// and normalized here so downstream packages only ever see the strict
// Response shape.
package scorer

import "context"

// Scorer is the core abstraction for the external pronunciation scoring
// collaborator.
type Scorer interface {
	// Score submits reference text plus recorded audio and returns
	// normalized per-word and per-phoneme scores. The call is the only
	// network hop in an attempt submission; its result is handed to the
	// evaluator as a plain value.
	Score(ctx context.Context, req Request) (*Response, error)

	// VendorID identifies the backing scoring vendor.
	VendorID() string
}

// Request describes a single scoring job.
type Request struct {
	// ReferenceText is the word, phrase, or sentence the learner read.
	ReferenceText string

	// AudioURL points at the learner's recorded audio in blob storage.
	AudioURL string

	// Locale is the BCP 47 accent/language hint, e.g. "en-US".
	Locale string
}

// Response is the normalized scoring result. All scores are 0-100.
type Response struct {
	// UtteranceScore is the overall score for the whole utterance.
	UtteranceScore float64

	// FluencyScore is the vendor's fluency estimate, when provided.
	FluencyScore *float64

	// Words holds per-word scores in reading order.
	Words []WordScore
}

// WordScore is the score for one word of the reference text.
type WordScore struct {
	Text     string         `json:"text"`
	Score    float64        `json:"score"`
	Phonemes []PhonemeScore `json:"phonemes,omitempty"`
}

// PhonemeScore is the score for one phoneme within a word.
type PhonemeScore struct {
	Phoneme string  `json:"phoneme"`
	Score   float64 `json:"score"`
}
