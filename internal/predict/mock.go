package predict

import (
	"context"
	"sync"

	"github.com/unimind/unimind/internal/survey"
)

// MockScore is a canned outcome for the MockScorer.
type MockScore struct {
	Result *Result
	Err    error
}

// MockCall records the arguments of one Score invocation.
type MockCall struct {
	Form  survey.Form
	Token string
}

// MockScorer is a deterministic Scorer for testing. It returns canned
// outcomes in FIFO order and records all calls.
type MockScorer struct {
	mu    sync.Mutex
	queue []MockScore
	Calls []MockCall
}

var _ Scorer = (*MockScorer)(nil)

// NewMockScorer creates a MockScorer with the given canned outcomes.
func NewMockScorer(scores ...MockScore) *MockScorer {
	return &MockScorer{queue: scores}
}

// Score returns the next canned outcome, or a network error if the queue
// is empty.
func (m *MockScorer) Score(_ context.Context, form survey.Form, token string) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Form: form, Token: token})

	if len(m.queue) == 0 {
		return nil, &ErrNetwork{}
	}

	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return next.Result, nil
}

// AddScore appends a canned outcome to the queue.
func (m *MockScorer) AddScore(s MockScore) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, s)
}

// CallCount returns the number of Score calls made.
func (m *MockScorer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
