package sdk

// EventSink receives the append-only notifications emitted by the core:
// parameter and electorate changes with before/after values, and lifecycle
// transitions. Notifications are never retracted or edited.
//
// Emit is called inside a committed operation; implementations should not
// block.
type EventSink interface {
	Emit(event any)
}

// NopSink discards all events.
type NopSink struct{}

// Emit implements EventSink.
func (NopSink) Emit(any) {}
