//go:build !tinygo

package sinks

import (
	"context"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"

	"github.com/willibrandon/mikrolog/core"
)

// OTelSink emits log events as OpenTelemetry log records.
type OTelSink struct {
	logger otellog.Logger
}

// NewOTelSink creates a sink emitting through logger.
func NewOTelSink(logger otellog.Logger) *OTelSink {
	return &OTelSink{logger: logger}
}

// NewOTelSinkFromGlobal creates a sink on the globally registered
// LoggerProvider, scoped to name.
func NewOTelSinkFromGlobal(name string) *OTelSink {
	return NewOTelSink(global.Logger(name))
}

// Emit converts and emits the event.
func (s *OTelSink) Emit(event *core.LogEvent) {
	s.logger.Emit(context.Background(), toOTelRecord(event))
}

func toOTelRecord(event *core.LogEvent) otellog.Record {
	var record otellog.Record
	record.SetTimestamp(event.Timestamp)
	record.SetObservedTimestamp(event.Timestamp)
	record.SetBody(otellog.StringValue(event.Message))
	record.SetSeverity(otelSeverity(event.Level))
	record.SetSeverityText(event.Level.String())
	return record
}

func otelSeverity(level core.Level) otellog.Severity {
	switch level {
	case core.TraceLevel:
		return otellog.SeverityTrace1
	case core.DebugLevel:
		return otellog.SeverityDebug1
	case core.InfoLevel:
		return otellog.SeverityInfo1
	case core.WarnLevel:
		return otellog.SeverityWarn1
	case core.ErrorLevel:
		return otellog.SeverityError1
	case core.FatalLevel:
		return otellog.SeverityFatal1
	default:
		return otellog.SeverityUndefined
	}
}
