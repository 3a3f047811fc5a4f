package sinks

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/mikrolog/core"
)

var testTime = time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)

func TestAppendConsoleLine(t *testing.T) {
	event := &core.LogEvent{Timestamp: testTime, Level: core.WarnLevel, Message: "low disk"}

	plain := string(AppendConsoleLine(nil, event, false))
	assert.Equal(t, "2024-01-15 10:30:45 [WARN ]: low disk\n", plain)

	colored := string(AppendConsoleLine(nil, event, true))
	assert.Equal(t, "2024-01-15 10:30:45 [\x1b[33mWARN \x1b[0m]: low disk\n", colored)
}

func TestAppendFileLine(t *testing.T) {
	tests := []struct {
		level core.Level
		want  string
	}{
		{core.TraceLevel, "[TRACE]: m\n"},
		{core.DebugLevel, "[DEBUG]: m\n"},
		{core.InfoLevel, "[INFO ]: m\n"},
		{core.WarnLevel, "[WARN ]: m\n"},
		{core.ErrorLevel, "[ERROR]: m\n"},
		{core.FatalLevel, "[FATAL]: m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			line := string(AppendFileLine(nil, &core.LogEvent{Timestamp: testTime, Level: tt.level, Message: "m"}))
			assert.Equal(t, "2024-01-15 10:30:45 "+tt.want, line)
		})
	}
}

func TestAppendSerialLine(t *testing.T) {
	line, err := AppendSerialLine(nil, core.ErrorLevel, "motor stalled")
	require.NoError(t, err)
	assert.Equal(t, " [ERROR]: motor stalled\r\n", string(line))
}

func TestAppendSerialLineTruncates(t *testing.T) {
	long := strings.Repeat("x", SerialMessageSize+100)

	line, err := AppendSerialLine(nil, core.InfoLevel, long)
	require.ErrorIs(t, err, core.ErrMessageTruncated)

	body := strings.TrimSuffix(strings.TrimPrefix(string(line), " [INFO ]: "), "\r\n")
	assert.Len(t, body, SerialMessageSize)
	assert.True(t, strings.HasSuffix(body, TruncationMarker))
	assert.LessOrEqual(t, len(line), SerialLineSize+2)
}

func TestAppendSerialLineExactFit(t *testing.T) {
	msg := strings.Repeat("y", SerialMessageSize)
	line, err := AppendSerialLine(nil, core.InfoLevel, msg)
	require.NoError(t, err)
	assert.Contains(t, string(line), msg)
}

func TestTruncateKeepsRunes(t *testing.T) {
	s := "héllo"
	// 'é' occupies bytes 1 and 2; cutting at 2 must back off to 1.
	assert.Equal(t, "h", truncate(s, 2))
	assert.Equal(t, "hé", truncate(s, 3))
	assert.Equal(t, s, truncate(s, 10))
	assert.Equal(t, "", truncate(s, 0))
}
