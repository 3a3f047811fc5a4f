package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/willibrandon/mikrolog/core"
)

// SlogHandler implements slog.Handler on top of a mikrolog logger.
type SlogHandler struct {
	logger Dispatcher
	attrs  []slog.Attr
	groups []string
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a slog.Handler writing to logger.
func NewSlogHandler(logger Dispatcher) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.IsEnabled(SlogLevel(level))
}

// Handle renders the record and its attributes into one message. The
// context bounds gate acquisition.
func (h *SlogHandler) Handle(ctx context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	for _, attr := range h.attrs {
		h.appendAttr(&b, "", attr)
	}
	prefix := h.groupPrefix()
	record.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, prefix, attr)
		return true
	})

	return h.logger.Write(ctx, SlogLevel(record.Level), "%s", b.String())
}

// WithAttrs returns a new Handler whose attributes consist of
// both the receiver's attributes and the arguments.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := h.groupPrefix()
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, attr := range attrs {
		if prefix != "" {
			attr.Key = prefix + attr.Key
		}
		newAttrs = append(newAttrs, attr)
	}
	return &SlogHandler{logger: h.logger, attrs: newAttrs, groups: h.groups}
}

// WithGroup returns a new Handler with the given group appended to
// the receiver's existing groups.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name
	return &SlogHandler{logger: h.logger, attrs: h.attrs, groups: newGroups}
}

func (h *SlogHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func (h *SlogHandler) appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			h.appendAttr(b, groupPrefix, a)
		}
		return
	}
	appendPair(b, prefix+attr.Key, attr.Value.Any())
}

// SlogLevel converts a slog level to a mikrolog level.
func SlogLevel(level slog.Level) core.Level {
	switch {
	case level < slog.LevelDebug:
		return core.TraceLevel
	case level < slog.LevelInfo:
		return core.DebugLevel
	case level < slog.LevelWarn:
		return core.InfoLevel
	case level < slog.LevelError:
		return core.WarnLevel
	case level == slog.LevelError:
		return core.ErrorLevel
	default:
		return core.FatalLevel
	}
}
