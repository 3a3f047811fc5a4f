package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/willibrandon/mikrolog/core"
)

// LogrSink implements logr.LogSink on top of a mikrolog logger.
//
// V-levels map as V(0) → INFO, V(1) → DEBUG, V(2+) → TRACE. Error calls log
// at ERROR with the error appended as error=....
type LogrSink struct {
	logger Dispatcher
	name   string
	values []any
}

var _ logr.LogSink = (*LogrSink)(nil)

// NewLogrSink creates a logr.LogSink writing to logger.
func NewLogrSink(logger Dispatcher) *LogrSink {
	return &LogrSink{logger: logger}
}

// Init is a no-op; call-site depth is not recorded.
func (s *LogrSink) Init(logr.RuntimeInfo) {}

// Enabled tests whether this LogSink is enabled at the given V-level.
func (s *LogrSink) Enabled(level int) bool {
	return s.logger.IsEnabled(logrLevel(level))
}

// Info logs a non-error message with the given key/value pairs.
func (s *LogrSink) Info(level int, msg string, keysAndValues ...any) {
	_ = s.logger.Write(context.Background(), logrLevel(level), "%s", s.render(msg, nil, keysAndValues))
}

// Error logs an error message with the given key/value pairs.
func (s *LogrSink) Error(err error, msg string, keysAndValues ...any) {
	_ = s.logger.Write(context.Background(), core.ErrorLevel, "%s", s.render(msg, err, keysAndValues))
}

// WithValues returns a new LogSink with additional key/value pairs.
func (s *LogrSink) WithValues(keysAndValues ...any) logr.LogSink {
	values := make([]any, 0, len(s.values)+len(keysAndValues))
	values = append(values, s.values...)
	values = append(values, keysAndValues...)
	return &LogrSink{logger: s.logger, name: s.name, values: values}
}

// WithName returns a new LogSink with name appended, dot-separated.
func (s *LogrSink) WithName(name string) logr.LogSink {
	newName := name
	if s.name != "" {
		newName = s.name + "." + name
	}
	return &LogrSink{logger: s.logger, name: newName, values: s.values}
}

func (s *LogrSink) render(msg string, err error, keysAndValues []any) string {
	var b strings.Builder
	if s.name != "" {
		b.WriteString(s.name)
		b.WriteString(": ")
	}
	b.WriteString(msg)

	appendKeysAndValues(&b, s.values)
	appendKeysAndValues(&b, keysAndValues)
	if err != nil {
		appendPair(&b, "error", err)
	}
	return b.String()
}

func appendKeysAndValues(b *strings.Builder, keysAndValues []any) {
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			appendPair(b, key, nil)
			break
		}
		appendPair(b, key, keysAndValues[i+1])
	}
}

// logrLevel converts logr V-levels: 0=info, 1=debug, 2+=trace.
func logrLevel(level int) core.Level {
	switch level {
	case 0:
		return core.InfoLevel
	case 1:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
