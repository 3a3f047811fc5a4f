package core

import "errors"

var (
	// ErrRegistryFull is returned when a sink is registered past the registry capacity.
	ErrRegistryFull = errors.New("sink registry full")

	// ErrMessageTruncated signals that a rendered message did not fit a fixed buffer
	// and was cut short with a truncation marker.
	ErrMessageTruncated = errors.New("message truncated")

	// ErrInvalidLevel is returned for levels outside TRACE..FATAL.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrGateTimeout is returned when the exclusion gate could not be acquired in time.
	ErrGateTimeout = errors.New("log gate acquisition timed out")

	// ErrGateFailed is returned when the exclusion gate panicked while being
	// acquired or released.
	ErrGateFailed = errors.New("log gate failed")

	// ErrNilSink is returned when registering a nil sink.
	ErrNilSink = errors.New("nil sink")
)
