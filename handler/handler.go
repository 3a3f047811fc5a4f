// Package handler adapts logr and log/slog front-ends to a mikrolog logger.
//
// Key/value pairs are rendered into the message text as key=value, so the
// lines written by the sinks stay plain text.
package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/willibrandon/mikrolog/core"
)

// Dispatcher is the part of *mikrolog.Logger the handlers need.
type Dispatcher interface {
	Write(ctx context.Context, level core.Level, format string, args ...any) error
	IsEnabled(level core.Level) bool
}

// appendPair appends " key=value" to b. Values containing spaces, quotes or
// '=' are quoted.
func appendPair(b *strings.Builder, key string, value any) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case error:
		s = v.Error()
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		s = strconv.Quote(s)
	}
	b.WriteString(s)
}
