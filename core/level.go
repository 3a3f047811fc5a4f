package core

import (
	"fmt"
	"strings"
)

// Level specifies the severity of a log event.
type Level int

const (
	// TraceLevel is the most detailed logging level.
	TraceLevel Level = iota

	// DebugLevel is for debugging information.
	DebugLevel

	// InfoLevel is for informational messages.
	InfoLevel

	// WarnLevel is for warnings.
	WarnLevel

	// ErrorLevel is for errors.
	ErrorLevel

	// FatalLevel is for fatal errors. Logging at this level never exits the process.
	FatalLevel
)

// ColorReset ends an ANSI color sequence.
const ColorReset = "\x1b[0m"

var levelLabels = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var levelColors = [...]string{
	"\x1b[94m",
	"\x1b[36m",
	"\x1b[32m",
	"\x1b[33m",
	"\x1b[31m",
	"\x1b[35m",
}

// Levels returns every defined level in ascending order.
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
}

// IsValid reports whether l is one of the defined levels.
func (l Level) IsValid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// Validate returns ErrInvalidLevel if l is outside the defined levels.
func (l Level) Validate() error {
	if !l.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return nil
}

// String returns the canonical label, e.g. "WARN".
func (l Level) String() string {
	if !l.IsValid() {
		return "UNKNOWN"
	}
	return levelLabels[l]
}

// Padded returns the label left-justified to five characters.
func (l Level) Padded() string {
	return fmt.Sprintf("%-5s", l.String())
}

// Color returns the ANSI color prefix used on the console, or "" for invalid levels.
func (l Level) Color() string {
	if !l.IsValid() {
		return ""
	}
	return levelColors[l]
}

// Satisfies reports whether an event at level l passes a minimum of min.
func (l Level) Satisfies(min Level) bool {
	return l >= min
}

// ParseLevel parses a level name. Long names, three-letter abbreviations and
// the Serilog-style names (verbose, information, warning) are accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "trc", "verbose", "vrb":
		return TraceLevel, nil
	case "debug", "dbg":
		return DebugLevel, nil
	case "info", "inf", "information":
		return InfoLevel, nil
	case "warn", "wrn", "warning":
		return WarnLevel, nil
	case "error", "err":
		return ErrorLevel, nil
	case "fatal", "ftl":
		return FatalLevel, nil
	default:
		return TraceLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
