//go:build !tinygo

package sinks

import (
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/selflog"
)

// SentrySink captures log events as Sentry events. Register it with a high
// minimum level (ERROR or FATAL) so only incidents leave the process.
type SentrySink struct {
	hub *sentry.Hub
}

// NewSentrySink creates a sink capturing through hub.
func NewSentrySink(hub *sentry.Hub) *SentrySink {
	return &SentrySink{hub: hub}
}

// NewSentrySinkWithDSN creates a Sentry client for dsn and a sink bound to it.
func NewSentrySinkWithDSN(dsn, environment string) (*SentrySink, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Sentry client: %w", err)
	}
	return NewSentrySink(sentry.NewHub(client, sentry.NewScope())), nil
}

// Emit captures the event.
func (s *SentrySink) Emit(event *core.LogEvent) {
	if id := s.hub.CaptureEvent(toSentryEvent(event)); id == nil && selflog.IsEnabled() {
		selflog.Printf("[sentry] event not captured: %s", event.Message)
	}
}

// Flush waits up to timeout for queued events to be delivered.
func (s *SentrySink) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}

// Close flushes pending events with a short timeout.
func (s *SentrySink) Close() error {
	if !s.hub.Flush(2 * time.Second) {
		return errors.New("sentry flush timed out")
	}
	return nil
}

func toSentryEvent(event *core.LogEvent) *sentry.Event {
	e := sentry.NewEvent()
	e.Message = event.Message
	e.Level = sentryLevel(event.Level)
	e.Timestamp = event.Timestamp
	e.Logger = "mikrolog"
	if event.Format != "" {
		// Group by template rather than by rendered text.
		e.Fingerprint = []string{event.Format}
		e.Tags["log.format"] = event.Format
	}
	e.Tags["log.level"] = event.Level.String()
	return e
}

func sentryLevel(level core.Level) sentry.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return sentry.LevelDebug
	case core.InfoLevel:
		return sentry.LevelInfo
	case core.WarnLevel:
		return sentry.LevelWarning
	case core.ErrorLevel:
		return sentry.LevelError
	case core.FatalLevel:
		return sentry.LevelFatal
	default:
		return sentry.LevelInfo
	}
}
