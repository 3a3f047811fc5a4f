package mikrolog

import (
	"github.com/go-logr/logr"

	"github.com/willibrandon/mikrolog/handler"
)

// NewLogr returns a logr.Logger writing to l.
func NewLogr(l *Logger) logr.Logger {
	return logr.New(handler.NewLogrSink(l))
}

// AsLogrSink returns l as a logr.LogSink.
func (l *Logger) AsLogrSink() logr.LogSink {
	return handler.NewLogrSink(l)
}
