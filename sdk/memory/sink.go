package memory

import "sync"

// Sink is an append-only in-memory event sink.
type Sink struct {
	mu     sync.Mutex
	events []any
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Emit implements sdk.EventSink.
func (s *Sink) Emit(event any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns the emitted events in order.
func (s *Sink) Events() []any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]any(nil), s.events...)
}
