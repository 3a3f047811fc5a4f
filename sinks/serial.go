package sinks

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/selflog"
)

// SerialSink is the embedded default sink. It writes compact
// " [LEVEL]: message" lines without timestamp or colour, formatting into a
// fixed buffer so no allocation happens per event. Messages that do not fit
// are truncated with TruncationMarker.
type SerialSink struct {
	output    io.Writer
	mu        sync.Mutex
	buf       [SerialLineSize + 2]byte
	truncated atomic.Uint64
}

// NewSerialSink creates a serial sink writing to w, typically a UART.
func NewSerialSink(w io.Writer) *SerialSink {
	return &SerialSink{output: w}
}

// Emit writes the log event as one serial line.
func (s *SerialSink) Emit(event *core.LogEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := AppendSerialLine(s.buf[:0], event.Level, event.Message)
	if errors.Is(err, core.ErrMessageTruncated) {
		s.truncated.Add(1)
		selflog.Printf("[serial] message truncated to %d bytes", SerialMessageSize)
	}
	if _, err := s.output.Write(line); err != nil {
		selflog.Printf("[serial] write failed: %v", err)
	}
}

// Truncated returns how many messages were cut to fit the buffer.
func (s *SerialSink) Truncated() uint64 {
	return s.truncated.Load()
}

// Close closes the underlying writer if it is an io.Closer.
func (s *SerialSink) Close() error {
	if c, ok := s.output.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
