package core

import "time"

// LogEvent is the value handed to a sink for a single dispatch. It is only
// valid for the duration of Emit; sinks that keep events must copy them.
type LogEvent struct {
	// Timestamp is computed once per dispatch, at second resolution.
	Timestamp time.Time

	// Level is the severity of the event.
	Level Level

	// Format is the printf-style template supplied by the caller.
	Format string

	// Args are the arguments supplied with Format.
	Args []any

	// Message is Format rendered with Args. Every sink of one dispatch sees the same value.
	Message string

	// UserData is the context registered with the receiving sink, such as the
	// writer a file callback should write to.
	UserData any
}

// TimestampLayout is the layout of the timestamp prefix in console and file lines.
const TimestampLayout = "2006-01-02 15:04:05"
