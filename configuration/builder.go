package configuration

import (
	"io"
	"strings"

	"github.com/willibrandon/mikrolog"
	"github.com/willibrandon/mikrolog/gate"
	"github.com/willibrandon/mikrolog/sinks"
)

// OpenSerial opens the serial target's port. Tests replace it.
var OpenSerial = func(name string, baud int) (io.WriteCloser, error) {
	return sinks.OpenSerialPort(name, baud)
}

// Build creates the logger described by c. The logger owns the file and
// serial port it opened; release them with Logger.Close.
func (c *Config) Build(extra ...mikrolog.Option) (*mikrolog.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := ParseLevel(c.Level)
	fileLevel, _ := ParseLevel(c.FileLevel)

	opts := []mikrolog.Option{
		mikrolog.WithMinimumLevel(level),
		mikrolog.WithQuiet(c.Quiet),
		mikrolog.WithCapacity(c.Capacity),
		mikrolog.WithGateTimeout(c.GateTimeout),
	}

	var port io.WriteCloser
	switch strings.ToLower(c.Target) {
	case TargetSerial:
		p, err := OpenSerial(c.Serial.Port, c.Serial.Baud)
		if err != nil {
			return nil, err
		}
		port = p
		opts = append(opts, mikrolog.WithSerial(port))
	case TargetNone:
		opts = append(opts, mikrolog.WithDefaultSink(nil))
	default:
		opts = append(opts, mikrolog.WithConsole())
	}

	switch strings.ToLower(c.Gate) {
	case GateMutex:
		opts = append(opts, mikrolog.WithGate(gate.NewMutex()))
	case GateSemaphore:
		opts = append(opts, mikrolog.WithGate(gate.NewSemaphore()))
	}

	if c.File != "" {
		opts = append(opts, mikrolog.WithFilePath(c.File, fileLevel))
	}
	opts = append(opts, extra...)

	logger, err := mikrolog.Build(opts...)
	if port != nil {
		logger.Own(port)
	}
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	return logger, nil
}
