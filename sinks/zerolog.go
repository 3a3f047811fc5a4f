//go:build !tinygo

package sinks

import (
	"github.com/rs/zerolog"

	"github.com/willibrandon/mikrolog/core"
)

// ZerologSink forwards rendered messages to a zerolog logger. FATAL events
// are written with WithLevel, which never exits the process.
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink creates a sink writing to logger.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

// Emit writes the event through zerolog.
func (s *ZerologSink) Emit(event *core.LogEvent) {
	s.logger.WithLevel(zerologLevel(event.Level)).
		Time(zerolog.TimestampFieldName, event.Timestamp).
		Msg(event.Message)
}

func zerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}
