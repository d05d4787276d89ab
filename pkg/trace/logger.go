package trace

// Logger receives trace events.
// Pass NoopLogger to disable tracing.
type Logger interface {
	// Log records an event. Implementations must not call back into the
	// combiner that produced the event.
	Log(event Event)
}

// NoopLogger discards all events.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
