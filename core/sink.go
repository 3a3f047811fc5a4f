package core

// LogEventSink outputs log events to a destination.
type LogEventSink interface {
	// Emit writes the log event to the sink's destination.
	Emit(event *LogEvent)
}

// SinkFunc adapts an ordinary function to a LogEventSink.
type SinkFunc func(event *LogEvent)

// Emit calls f(event).
func (f SinkFunc) Emit(event *LogEvent) {
	f(event)
}
