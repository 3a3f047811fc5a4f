//go:build !tinygo

package sinks

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"

	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/selflog"
)

// ConsoleSink is the host default sink: colour-coded, timestamped lines on
// standard error, one write per event.
type ConsoleSink struct {
	output   io.Writer
	mu       sync.Mutex
	useColor bool
	buf      []byte
}

// NewConsoleSink creates a console sink that writes to stderr.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		output:   colorable.NewColorable(os.Stderr),
		useColor: shouldUseColor(os.Stderr),
		buf:      make([]byte, 0, 256),
	}
}

// NewConsoleSinkWithWriter creates a console sink with a custom writer.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		output:   w,
		useColor: shouldUseColor(w),
		buf:      make([]byte, 0, 256),
	}
}

// SetUseColor enables or disables color output.
func (cs *ConsoleSink) SetUseColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.useColor = useColor
}

// UseColor reports whether color output is enabled.
func (cs *ConsoleSink) UseColor() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.useColor
}

// Emit writes the log event to the console.
func (cs *ConsoleSink) Emit(event *core.LogEvent) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.buf = AppendConsoleLine(cs.buf[:0], event, cs.useColor)
	if err := writeAndFlush(cs.output, cs.buf); err != nil {
		selflog.Printf("[console] write failed: %v", err)
	}
}

// Close releases any resources held by the sink.
func (cs *ConsoleSink) Close() error {
	return nil
}
