//go:build !tinygo

package mikrolog

import (
	"io"

	"github.com/willibrandon/mikrolog/sinks"
)

// WithConsole uses a console sink on stderr as the default sink.
func WithConsole() Option {
	return WithDefaultSink(sinks.NewConsoleSink())
}

// WithConsoleWriter uses a console sink on w as the default sink.
func WithConsoleWriter(w io.Writer) Option {
	return WithDefaultSink(sinks.NewConsoleSinkWithWriter(w))
}
