package scorer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(maxAttempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: maxAttempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func okResponse() *Response {
	return &Response{
		UtteranceScore: 75,
		Words:          []WordScore{{Text: "hello", Score: 75}},
	}
}

func TestRetry_SucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockScorer(
		MockResponse{Err: &ErrUnavailable{Err: errors.New("connection reset")}},
		MockResponse{Response: okResponse()},
	)
	s := WithRetry(mock, fastRetryConfig(3))

	resp, err := s.Score(context.Background(), Request{ReferenceText: "hello"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if resp.UtteranceScore != 75 {
		t.Errorf("UtteranceScore = %v, want 75", resp.UtteranceScore)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	unavail := &ErrUnavailable{Err: errors.New("down")}
	mock := NewMockScorer(
		MockResponse{Err: unavail},
		MockResponse{Err: unavail},
		MockResponse{Err: unavail},
	)
	s := WithRetry(mock, fastRetryConfig(3))

	_, err := s.Score(context.Background(), Request{ReferenceText: "hello"})
	var gotUnavail *ErrUnavailable
	if !errors.As(err, &gotUnavail) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	inv := &ErrInvalidResponse{Err: errors.New("truncated")}
	mock := NewMockScorer(
		MockResponse{Err: inv},
		MockResponse{Err: inv},
		MockResponse{Err: inv},
	)
	s := WithRetry(mock, fastRetryConfig(5))

	_, err := s.Score(context.Background(), Request{ReferenceText: "hello"})
	var gotInv *ErrInvalidResponse
	if !errors.As(err, &gotInv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2 (one retry for invalid response)", mock.CallCount())
	}
}

func TestRetry_NonTransientNotRetried(t *testing.T) {
	mock := NewMockScorer(
		MockResponse{Err: errors.New("status 400: bad audio_url")},
		MockResponse{Response: okResponse()},
	)
	s := WithRetry(mock, fastRetryConfig(3))

	_, err := s.Score(context.Background(), Request{ReferenceText: "hello"})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockScorer(MockResponse{Err: &ErrUnavailable{}})
	s := WithRetry(mock, fastRetryConfig(3))

	_, err := s.Score(ctx, Request{ReferenceText: "hello"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
