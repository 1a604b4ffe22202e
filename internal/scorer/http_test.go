package scorer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", Vendor: "testvendor"})
	return c, srv
}

func TestClient_Score_Success(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/score" {
			t.Errorf("path = %s, want /v1/score", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"utterance_score": 82.5,
			"fluency_score": 74,
			"words": [
				{"text": "rural", "score": 81, "phonemes": [
					{"phoneme": "r", "score": 65},
					{"phoneme": "ʊə", "score": 90}
				]}
			]
		}`))
	})
	defer srv.Close()

	resp, err := c.Score(context.Background(), Request{ReferenceText: "rural", AudioURL: "blob://a"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if resp.UtteranceScore != 82.5 {
		t.Errorf("UtteranceScore = %v, want 82.5", resp.UtteranceScore)
	}
	if resp.FluencyScore == nil || *resp.FluencyScore != 74 {
		t.Errorf("FluencyScore = %v, want 74", resp.FluencyScore)
	}
	if len(resp.Words) != 1 || resp.Words[0].Text != "rural" {
		t.Fatalf("Words = %+v", resp.Words)
	}
	if len(resp.Words[0].Phonemes) != 2 {
		t.Errorf("Phonemes = %+v", resp.Words[0].Phonemes)
	}
}

func TestClient_Score_InvalidPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing words", `{"utterance_score": 80}`},
		{"score out of range", `{"utterance_score": 80, "words": [{"text": "a", "score": 120}]}`},
		{"not json", `<html>gateway error</html>`},
		{"empty word text", `{"utterance_score": 80, "words": [{"text": "", "score": 50}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			defer srv.Close()

			_, err := c.Score(context.Background(), Request{ReferenceText: "a"})
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestClient_Score_RateLimited(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := c.Score(context.Background(), Request{ReferenceText: "a"})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
	if rl.RetryAfter.Seconds() != 3 {
		t.Errorf("RetryAfter = %v, want 3s", rl.RetryAfter)
	}
}

func TestClient_Score_ServerError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	_, err := c.Score(context.Background(), Request{ReferenceText: "a"})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestClient_Score_UtteranceScoreNotBounded(t *testing.T) {
	// The schema intentionally leaves utterance_score unbounded; clamping
	// to [0,100] is the evaluator's job.
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"utterance_score": 104.2, "words": []}`))
	})
	defer srv.Close()

	resp, err := c.Score(context.Background(), Request{ReferenceText: "a"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if resp.UtteranceScore != 104.2 {
		t.Errorf("UtteranceScore = %v, want raw 104.2", resp.UtteranceScore)
	}
}
