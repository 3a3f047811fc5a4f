// Package selflog reports failures inside mikrolog itself.
//
// Logging must never crash or stall the host program, so the dispatcher and
// the sinks swallow their own errors: a full registry, a log file that could
// not be opened, a message cut short by a fixed serial buffer, a gate that
// timed out, a sink that panicked. selflog is where those swallowed errors go.
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Messages are formatted as:
//
//	2026-01-29T15:30:45Z [component] message details
//
// Set MIKROLOG_SELFLOG to "stderr", "stdout" or a file path to enable it at
// start-up.
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var (
	outputWriter atomic.Pointer[io.Writer]
	outputFunc   atomic.Pointer[func(string)]

	// reports counts every Printf call, enabled or not.
	reports atomic.Uint64
)

// Enable activates self-logging to w. w should be safe for concurrent use or
// wrapped with Sync.
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	outputFunc.Store(nil)
	outputWriter.Store(&w)
}

// EnableFunc activates self-logging through fn.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	outputWriter.Store(nil)
	outputFunc.Store(&fn)
}

// Disable deactivates self-logging.
func Disable() {
	outputWriter.Store(nil)
	outputFunc.Store(nil)
}

// IsEnabled reports whether self-logging is active. Guard expensive
// formatting with it.
func IsEnabled() bool {
	return outputWriter.Load() != nil || outputFunc.Load() != nil
}

// Printf records an internal failure. The format should start with the
// component in square brackets, e.g. "[file] open failed: %v".
func Printf(format string, args ...any) {
	reports.Add(1)

	w := outputWriter.Load()
	fn := outputFunc.Load()
	if w == nil && fn == nil {
		return
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)
	if w != nil {
		fmt.Fprintln(*w, line)
	} else if fn != nil {
		(*fn)(line)
	}
}

// Reports returns how many failures have been recorded since start-up,
// including those recorded while self-logging was disabled.
func Reports() uint64 {
	return reports.Load()
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps w so concurrent Printf calls do not interleave.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

func init() {
	switch dest := os.Getenv("MIKROLOG_SELFLOG"); dest {
	case "":
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		if f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			Enable(Sync(f))
		}
	}
}
