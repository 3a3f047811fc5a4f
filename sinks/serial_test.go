package sinks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/selflog"
)

func TestSerialSink(t *testing.T) {
	var port bytes.Buffer
	sink := NewSerialSink(&port)

	sink.Emit(&core.LogEvent{Timestamp: testTime, Level: core.WarnLevel, Message: "brake not centred"})
	sink.Emit(&core.LogEvent{Timestamp: testTime, Level: core.InfoLevel, Message: "steer ok"})

	assert.Equal(t, " [WARN ]: brake not centred\r\n [INFO ]: steer ok\r\n", port.String())
	assert.Zero(t, sink.Truncated())
}

func TestSerialSinkTruncates(t *testing.T) {
	var diag bytes.Buffer
	selflog.Enable(&diag)
	defer selflog.Disable()

	var port bytes.Buffer
	sink := NewSerialSink(&port)
	sink.Emit(&core.LogEvent{Level: core.ErrorLevel, Message: strings.Repeat("z", 1000)})

	require.Equal(t, uint64(1), sink.Truncated())
	line := port.String()
	assert.True(t, strings.HasSuffix(line, TruncationMarker+"\r\n"))
	assert.LessOrEqual(t, len(line), SerialLineSize+2)
	assert.Contains(t, diag.String(), "[serial] message truncated")
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestSerialSinkClose(t *testing.T) {
	port := &closeRecorder{}
	sink := NewSerialSink(port)
	require.NoError(t, sink.Close())
	assert.True(t, port.closed)

	assert.NoError(t, NewSerialSink(&bytes.Buffer{}).Close())
}
