package sinks

import (
	"io"
	"unicode/utf8"

	"github.com/willibrandon/mikrolog/core"
)

const (
	// SerialMessageSize bounds the rendered message on the serial path.
	SerialMessageSize = 256

	// SerialLineSize bounds a full serial line, prefix included.
	SerialLineSize = 384

	// TruncationMarker ends a message that was cut to fit a fixed buffer.
	TruncationMarker = "..."

	labelWidth = 5
)

// appendLabel appends the level label left-justified to five characters.
func appendLabel(b []byte, level core.Level) []byte {
	label := level.String()
	b = append(b, label...)
	for i := len(label); i < labelWidth; i++ {
		b = append(b, ' ')
	}
	return b
}

// AppendConsoleLine appends "<ts> [<color><LEVEL><reset>]: <msg>\n" to b.
// Color codes are omitted when useColor is false.
func AppendConsoleLine(b []byte, event *core.LogEvent, useColor bool) []byte {
	b = event.Timestamp.AppendFormat(b, core.TimestampLayout)
	b = append(b, ' ', '[')
	color := event.Level.Color()
	if useColor && color != "" {
		b = append(b, color...)
		b = appendLabel(b, event.Level)
		b = append(b, core.ColorReset...)
	} else {
		b = appendLabel(b, event.Level)
	}
	b = append(b, ']', ':', ' ')
	b = append(b, event.Message...)
	return append(b, '\n')
}

// AppendFileLine appends "<ts> [<LEVEL>]: <msg>\n" to b.
func AppendFileLine(b []byte, event *core.LogEvent) []byte {
	return AppendConsoleLine(b, event, false)
}

// AppendSerialLine appends " [<LEVEL>]: <msg>\r\n" to b. A message longer
// than SerialMessageSize is cut on a rune boundary and ends with
// TruncationMarker; the returned error is then core.ErrMessageTruncated.
func AppendSerialLine(b []byte, level core.Level, message string) ([]byte, error) {
	var err error
	if len(message) > SerialMessageSize {
		message = truncate(message, SerialMessageSize-len(TruncationMarker)) + TruncationMarker
		err = core.ErrMessageTruncated
	}

	start := len(b)
	b = append(b, ' ', '[')
	b = appendLabel(b, level)
	b = append(b, ']', ':', ' ')

	// The prefix is fixed width, so this only trips if the constants change.
	if room := SerialLineSize - (len(b) - start); len(message) > room {
		message = truncate(message, room-len(TruncationMarker)) + TruncationMarker
		err = core.ErrMessageTruncated
	}
	b = append(b, message...)
	return append(b, '\r', '\n'), err
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

type flusher interface {
	Flush() error
}

// writeAndFlush writes p to w and flushes w if it buffers.
func writeAndFlush(w io.Writer, p []byte) error {
	if _, err := w.Write(p); err != nil {
		return err
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
