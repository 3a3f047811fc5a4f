package mikrolog

import (
	"io"
	"time"

	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/gate"
	"github.com/willibrandon/mikrolog/sinks"
)

type registration struct {
	sink     core.LogEventSink
	udata    any
	minLevel core.Level
}

// config holds the configuration for building a logger.
type config struct {
	minimumLevel  core.Level
	levelSwitch   *LevelSwitch
	quiet         bool
	gate          core.Gate
	gateTimeout   time.Duration
	defaultSink   core.LogEventSink
	defaultSet    bool
	capacity      int
	clock         func() time.Time
	registrations []registration
	closers       []io.Closer
	err           error // First error encountered during configuration
}

// Option is a functional option for configuring a logger.
type Option func(*config)

// WithMinimumLevel sets the global minimum level of the default sink.
func WithMinimumLevel(level core.Level) Option {
	return func(c *config) {
		if err := level.Validate(); err != nil {
			c.setErr(err)
			return
		}
		c.minimumLevel = level
	}
}

// WithLevelSwitch uses levelSwitch for the global minimum level. It takes
// precedence over WithMinimumLevel.
func WithLevelSwitch(levelSwitch *LevelSwitch) Option {
	return func(c *config) {
		c.levelSwitch = levelSwitch
	}
}

// WithQuiet starts the logger with the default sink suppressed.
func WithQuiet(quiet bool) Option {
	return func(c *config) {
		c.quiet = quiet
	}
}

// WithGate serializes dispatch through g.
func WithGate(g core.Gate) Option {
	return func(c *config) {
		c.gate = g
	}
}

// WithLockFunc serializes dispatch through a lock/unlock hook.
func WithLockFunc(fn core.LockFunc, udata any) Option {
	return WithGate(gate.Func(fn, udata))
}

// WithGateTimeout bounds gate acquisition for callers whose context has no
// deadline. Only gates that honour contexts, such as gate.Semaphore, can
// time out.
func WithGateTimeout(d time.Duration) Option {
	return func(c *config) {
		c.gateTimeout = d
	}
}

// WithDefaultSink replaces the built-in default sink. A nil sink disables it.
func WithDefaultSink(sink core.LogEventSink) Option {
	return func(c *config) {
		c.defaultSink = sink
		c.defaultSet = true
	}
}

// WithSerial uses a serial sink on w as the default sink.
func WithSerial(w io.Writer) Option {
	return WithDefaultSink(sinks.NewSerialSink(w))
}

// WithSink registers sink at minimumLevel.
func WithSink(sink core.LogEventSink, minimumLevel core.Level) Option {
	return WithSinkContext(sink, nil, minimumLevel)
}

// WithSinkContext registers sink with udata as its context.
func WithSinkContext(sink core.LogEventSink, udata any, minimumLevel core.Level) Option {
	return func(c *config) {
		c.registrations = append(c.registrations, registration{sink: sink, udata: udata, minLevel: minimumLevel})
	}
}

// WithFile registers w as a file sink at minimumLevel. The logger does not
// close w.
func WithFile(w io.Writer, minimumLevel core.Level) Option {
	return WithSinkContext(core.SinkFunc(sinks.WriteFileLine), w, minimumLevel)
}

// WithFilePath creates the file at path and registers it at minimumLevel.
// The logger owns the file and closes it in Close.
func WithFilePath(path string, minimumLevel core.Level) Option {
	return func(c *config) {
		if c.err != nil {
			return
		}
		fs, err := sinks.NewFileSink(path)
		if err != nil {
			c.setErr(err)
			return
		}
		c.closers = append(c.closers, fs)
		c.registrations = append(c.registrations, registration{
			sink:     core.SinkFunc(sinks.WriteFileLine),
			udata:    fs.Writer(),
			minLevel: minimumLevel,
		})
	}
}

// WithCapacity sets the registry capacity. The default is MaxCallbacks.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithClock replaces time.Now as the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func (c *config) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}
