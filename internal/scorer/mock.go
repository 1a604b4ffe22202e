package scorer

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockScorer.
type MockResponse struct {
	Response *Response
	Err      error
}

// MockScorer is a deterministic Scorer for testing and offline use.
// It returns canned responses in FIFO order and records all requests.
type MockScorer struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockScorer creates a MockScorer with the given canned responses.
func NewMockScorer(responses ...MockResponse) *MockScorer {
	return &MockScorer{responses: responses}
}

// Score returns the next canned response or ErrUnavailable if the queue
// is empty.
func (m *MockScorer) Score(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Response, nil
}

// VendorID returns "mock".
func (m *MockScorer) VendorID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockScorer) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Score calls made.
func (m *MockScorer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Fixed is a Scorer that always returns the same response. Useful for
// offline submissions where the caller already knows the score.
type Fixed struct {
	Response *Response
}

func (f *Fixed) Score(_ context.Context, _ Request) (*Response, error) {
	return f.Response, nil
}

func (f *Fixed) VendorID() string {
	return "fixed"
}
