package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP implementation of Scorer against the vendor REST API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a Client for the configured vendor.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// wire types for the vendor API.
type scoreRequestBody struct {
	ReferenceText string `json:"reference_text"`
	AudioURL      string `json:"audio_url"`
	Locale        string `json:"locale,omitempty"`
}

type scoreResponseBody struct {
	UtteranceScore float64    `json:"utterance_score"`
	FluencyScore   *float64   `json:"fluency_score,omitempty"`
	Words          []wireWord `json:"words"`
}

type wireWord struct {
	Text     string        `json:"text"`
	Score    float64       `json:"score"`
	Phonemes []wirePhoneme `json:"phonemes,omitempty"`
}

type wirePhoneme struct {
	Phoneme string  `json:"phoneme"`
	Score   float64 `json:"score"`
}

// Score implements Scorer.
func (c *Client) Score(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(scoreRequestBody{
		ReferenceText: req.ReferenceText,
		AudioURL:      req.AudioURL,
		Locale:        req.Locale,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal score request: %w", err)
	}

	url := c.cfg.BaseURL + "/v1/score"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build score request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrUnavailable{Err: fmt.Errorf("read response body: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &ErrRateLimit{
			RetryAfter: retryAfterFrom(resp),
			Err:        fmt.Errorf("vendor returned 429"),
		}
	case resp.StatusCode >= 500:
		return nil, &ErrUnavailable{Err: fmt.Errorf("vendor returned %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("score request failed: status %d: %s", resp.StatusCode, truncate(raw, 200))
	}

	if err := validatePayload(raw); err != nil {
		return nil, err
	}

	var wire scoreResponseBody
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}

	return normalize(&wire), nil
}

// VendorID implements Scorer.
func (c *Client) VendorID() string {
	if c.cfg.Vendor != "" {
		return c.cfg.Vendor
	}
	return "http"
}

// normalize converts the wire payload into the strict Response shape.
func normalize(wire *scoreResponseBody) *Response {
	out := &Response{
		UtteranceScore: wire.UtteranceScore,
		FluencyScore:   wire.FluencyScore,
		Words:          make([]WordScore, 0, len(wire.Words)),
	}
	for _, w := range wire.Words {
		ws := WordScore{Text: w.Text, Score: w.Score}
		for _, p := range w.Phonemes {
			ws.Phonemes = append(ws.Phonemes, PhonemeScore{Phoneme: p.Phoneme, Score: p.Score})
		}
		out.Words = append(out.Words, ws)
	}
	return out
}

// retryAfterFrom parses the Retry-After header, tolerating its absence.
func retryAfterFrom(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
