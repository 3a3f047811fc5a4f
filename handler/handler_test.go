package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/mikrolog/core"
)

type record struct {
	level   core.Level
	message string
}

// recorder is a Dispatcher that keeps every message at or above min.
type recorder struct {
	mu      sync.Mutex
	min     core.Level
	records []record
	err     error
}

func (r *recorder) Write(_ context.Context, level core.Level, format string, args ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record{level: level, message: fmt.Sprintf(format, args...)})
	return nil
}

func (r *recorder) IsEnabled(level core.Level) bool {
	return level.IsValid() && level.Satisfies(r.min)
}

func (r *recorder) last(t *testing.T) record {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.records)
	return r.records[len(r.records)-1]
}

func TestLogrLevels(t *testing.T) {
	rec := &recorder{min: core.TraceLevel}
	log := logr.New(NewLogrSink(rec))

	log.Info("info")
	assert.Equal(t, record{core.InfoLevel, "info"}, rec.last(t))

	log.V(1).Info("debug")
	assert.Equal(t, record{core.DebugLevel, "debug"}, rec.last(t))

	log.V(2).Info("trace")
	assert.Equal(t, record{core.TraceLevel, "trace"}, rec.last(t))

	log.V(7).Info("deep")
	assert.Equal(t, core.TraceLevel, rec.last(t).level)
}

func TestLogrEnabled(t *testing.T) {
	rec := &recorder{min: core.InfoLevel}
	log := logr.New(NewLogrSink(rec))

	assert.True(t, log.Enabled())
	assert.False(t, log.V(1).Enabled())

	log.V(1).Info("dropped")
	assert.Empty(t, rec.records)
}

func TestLogrKeysAndValues(t *testing.T) {
	rec := &recorder{min: core.TraceLevel}
	log := logr.New(NewLogrSink(rec)).WithName("net").WithName("tcp").WithValues("port", 8080)

	log.Info("listening", "addr", "0.0.0.0", "note", "two words")

	assert.Equal(t, `net.tcp: listening port=8080 addr=0.0.0.0 note="two words"`, rec.last(t).message)
}

func TestLogrOddKeysAndValues(t *testing.T) {
	rec := &recorder{min: core.TraceLevel}
	logr.New(NewLogrSink(rec)).Info("odd", "dangling")

	assert.Equal(t, "odd dangling=<nil>", rec.last(t).message)
}

func TestLogrError(t *testing.T) {
	rec := &recorder{min: core.TraceLevel}
	log := logr.New(NewLogrSink(rec))

	log.Error(errors.New("eof"), "read failed", "fd", 3)

	assert.Equal(t, record{core.ErrorLevel, "read failed fd=3 error=eof"}, rec.last(t))
}

func TestSlogLevels(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.FatalLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SlogLevel(tt.level))
		})
	}
}

func TestSlogHandler(t *testing.T) {
	rec := &recorder{min: core.TraceLevel}
	log := slog.New(NewSlogHandler(rec))

	log.Warn("disk almost full", "free", 42, "mount", "/data")

	assert.Equal(t, record{core.WarnLevel, "disk almost full free=42 mount=/data"}, rec.last(t))
}

func TestSlogHandlerEnabled(t *testing.T) {
	rec := &recorder{min: core.WarnLevel}
	h := NewSlogHandler(rec)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	slog.New(h).Info("dropped")
	assert.Empty(t, rec.records)
}

func TestSlogHandlerAttrsAndGroups(t *testing.T) {
	rec := &recorder{min: core.TraceLevel}
	log := slog.New(NewSlogHandler(rec)).
		With("service", "api").
		WithGroup("req").
		With("id", 7)

	log.Info("done", "status", 200, slog.Group("timing", slog.Int("ms", 12)))

	assert.Equal(t, "done service=api req.id=7 req.status=200 req.timing.ms=12", rec.last(t).message)
}

func TestSlogHandlerEmptyGroupIsIgnored(t *testing.T) {
	h := NewSlogHandler(&recorder{})
	assert.Same(t, h, h.WithGroup(""))
}

func TestSlogHandlerReturnsDispatchError(t *testing.T) {
	rec := &recorder{min: core.TraceLevel, err: core.ErrGateTimeout}
	h := NewSlogHandler(rec)

	r := slog.NewRecord(testTime, slog.LevelInfo, "late", 0)
	err := h.Handle(context.Background(), r)

	assert.ErrorIs(t, err, core.ErrGateTimeout)
}

var testTime = time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
