package scorer

import "time"

// Config holds the HTTP client settings for the scoring vendor.
type Config struct {
	// BaseURL is the vendor API root, e.g. "https://api.example-speech.com".
	BaseURL string

	// APIKey authenticates requests. Sent as a bearer token.
	APIKey string

	// Vendor names the backing vendor for logging and events.
	Vendor string

	// Timeout bounds a single scoring call end to end.
	Timeout time.Duration
}

// RetryConfig controls the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the retry settings used in production.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     8 * time.Second,
		Multiplier:  2.0,
	}
}
