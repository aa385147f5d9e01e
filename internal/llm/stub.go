package llm

import (
	"context"
	"sync"
)

// StubCall records one Generate invocation against a StubClient.
type StubCall struct {
	Prompt string
	Params GenParams
}

// StubClient is a deterministic Client returning canned text, for tests
// and offline runs. Zero value is usable.
type StubClient struct {
	// Response is returned by every call unless Responses is set.
	Response string
	// Responses, if non-empty, are consumed one per call in order; the
	// last one repeats once exhausted.
	Responses []string
	// Err, if set, is returned by every call.
	Err error

	mu    sync.Mutex
	calls []StubCall
	next  int
}

// Generate returns the next canned response and records the call.
func (s *StubClient) Generate(ctx context.Context, prompt string, params GenParams) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &APICallError{Message: "context cancelled", Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, StubCall{Prompt: prompt, Params: params})

	if s.Err != nil {
		return "", s.Err
	}

	if len(s.Responses) > 0 {
		idx := s.next
		if idx >= len(s.Responses) {
			idx = len(s.Responses) - 1
		}
		s.next++
		return s.Responses[idx], nil
	}

	return s.Response, nil
}

// Close implements Client.
func (s *StubClient) Close() error { return nil }

// Calls returns a copy of the recorded invocations.
func (s *StubClient) Calls() []StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StubCall, len(s.calls))
	copy(out, s.calls)
	return out
}
