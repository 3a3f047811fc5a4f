package mikrolog

import (
	"log/slog"

	"github.com/willibrandon/mikrolog/handler"
)

// NewSlog returns a *slog.Logger writing to l.
func NewSlog(l *Logger) *slog.Logger {
	return slog.New(handler.NewSlogHandler(l))
}

// AsSlogHandler returns l as a slog.Handler.
func (l *Logger) AsSlogHandler() slog.Handler {
	return handler.NewSlogHandler(l)
}
