//go:build !tinygo

package mikrolog

import (
	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/sinks"
)

func hostDefaultSink() core.LogEventSink {
	return sinks.NewConsoleSink()
}
