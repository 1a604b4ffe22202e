package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingRefresher struct {
	calls atomic.Int32
}

func (c *countingRefresher) RefreshAll(_ context.Context) (int, error) {
	c.calls.Add(1)
	return 1, nil
}

func TestRefresherFiresImmediately(t *testing.T) {
	ref := &countingRefresher{}
	r := NewConfidenceRefresher(ref, time.Hour, nil)

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer r.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for ref.calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("refresh never fired")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRefresherStops(t *testing.T) {
	ref := &countingRefresher{}
	r := NewConfidenceRefresher(ref, 50*time.Millisecond, nil)

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.Stop()

	after := ref.calls.Load()
	time.Sleep(150 * time.Millisecond)
	if got := ref.calls.Load(); got != after {
		t.Errorf("refresher fired after Stop: %d -> %d", after, got)
	}
}
