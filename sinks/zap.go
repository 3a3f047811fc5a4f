//go:build !tinygo

package sinks

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/willibrandon/mikrolog/core"
)

// ZapSink forwards rendered messages to a zap logger. The original
// severity travels in the "severity" field because zap has no TRACE level
// and its FATAL level exits the process.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink writing to logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// Emit writes the event through zap, keeping the dispatch timestamp.
func (s *ZapSink) Emit(event *core.LogEvent) {
	ce := s.logger.Check(zapLevel(event.Level), event.Message)
	if ce == nil {
		return
	}
	ce.Time = event.Timestamp
	ce.Write(zap.Stringer("severity", event.Level))
}

// Close syncs the zap logger.
func (s *ZapSink) Close() error {
	return s.logger.Sync()
}

func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
