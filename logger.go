// Package mikrolog is a small leveled logger for hosts and microcontrollers.
//
// A Logger formats each call once, stamps it once and fans it out to a
// default sink (a colour console on hosts, a serial line on boards) and to
// up to MaxCallbacks registered sinks, each with its own minimum level:
//
//	logger := mikrolog.New(mikrolog.WithMinimumLevel(core.WarnLevel))
//	logger.RegisterFile(f, core.InfoLevel)
//	logger.Infof("x=%d", 5) // file only: INFO is below the global WARN
//
// The global minimum level and the quiet flag only affect the default sink.
// Registered sinks are filtered by their own level alone.
package mikrolog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/gate"
	"github.com/willibrandon/mikrolog/selflog"
	"github.com/willibrandon/mikrolog/sinks"
)

// Logger is the dispatcher. It is safe for concurrent use; registering sinks
// while other goroutines log is allowed.
type Logger struct {
	levelSwitch *LevelSwitch
	quiet       atomic.Bool
	registry    *Registry
	clock       func() time.Time

	mu          sync.RWMutex
	defaultSink core.LogEventSink
	gate        core.Gate
	gateTimeout time.Duration
	closers     []io.Closer
}

// New creates a logger. Configuration errors are reported to selflog and
// the offending option is skipped; use Build to receive them instead.
func New(opts ...Option) *Logger {
	l, err := build(opts)
	if err != nil {
		selflog.Printf("[config] %v", err)
	}
	return l
}

// Build creates a logger and returns the first configuration error. The
// logger is usable even when an error is returned.
func Build(opts ...Option) (*Logger, error) {
	return build(opts)
}

func build(opts []Option) (*Logger, error) {
	c := &config{minimumLevel: core.TraceLevel, clock: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	l := &Logger{
		levelSwitch: c.levelSwitch,
		registry:    NewRegistry(c.capacity),
		clock:       c.clock,
		gate:        c.gate,
		gateTimeout: c.gateTimeout,
		closers:     c.closers,
	}
	if l.levelSwitch == nil {
		l.levelSwitch = NewLevelSwitch(c.minimumLevel)
	}
	l.quiet.Store(c.quiet)

	if c.defaultSet {
		l.defaultSink = c.defaultSink
	} else {
		l.defaultSink = hostDefaultSink()
	}

	for _, r := range c.registrations {
		if _, err := l.registry.Register(r.sink, r.udata, r.minLevel); err != nil {
			c.setErr(fmt.Errorf("register %T: %w", r.sink, err))
		}
	}
	return l, c.err
}

// Level returns the global minimum level.
func (l *Logger) Level() core.Level {
	return l.levelSwitch.Level()
}

// SetLevel sets the global minimum level of the default sink.
func (l *Logger) SetLevel(level core.Level) error {
	return l.levelSwitch.SetLevel(level)
}

// LevelSwitch returns the switch holding the global minimum level.
func (l *Logger) LevelSwitch() *LevelSwitch {
	return l.levelSwitch
}

// Quiet reports whether the default sink is suppressed.
func (l *Logger) Quiet() bool {
	return l.quiet.Load()
}

// SetQuiet suppresses or restores the default sink. Registered sinks are
// unaffected.
func (l *Logger) SetQuiet(quiet bool) {
	l.quiet.Store(quiet)
}

// SetGate installs the exclusion gate. A nil gate disables synchronization.
func (l *Logger) SetGate(g core.Gate) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gate = g
}

// SetLockFunc installs a lock/unlock hook as the exclusion gate.
func (l *Logger) SetLockFunc(fn core.LockFunc, udata any) {
	l.SetGate(gate.Func(fn, udata))
}

// SetGateTimeout bounds gate acquisition when the caller's context has no
// deadline. Zero waits indefinitely.
func (l *Logger) SetGateTimeout(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gateTimeout = d
}

// SetDefaultSink replaces the default sink. A nil sink disables it.
func (l *Logger) SetDefaultSink(sink core.LogEventSink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.defaultSink = sink
}

// Registry returns the sink registry.
func (l *Logger) Registry() *Registry {
	return l.registry
}

// Register adds sink with udata as its context and minimumLevel as its
// threshold. A full registry returns core.ErrRegistryFull and changes nothing.
func (l *Logger) Register(sink core.LogEventSink, udata any, minimumLevel core.Level) (SlotID, error) {
	id, err := l.registry.Register(sink, udata, minimumLevel)
	if err != nil {
		selflog.Printf("[registry] register %T failed: %v", sink, err)
	}
	return id, err
}

// RegisterFunc adds a callback sink.
func (l *Logger) RegisterFunc(fn func(event *core.LogEvent), udata any, minimumLevel core.Level) (SlotID, error) {
	if fn == nil {
		return l.Register(nil, udata, minimumLevel)
	}
	return l.Register(core.SinkFunc(fn), udata, minimumLevel)
}

// RegisterFile adds w as a file sink: each eligible event is written as
// "<ts> [<LEVEL>]: <msg>" and w is flushed if it buffers. The caller keeps
// ownership of w.
func (l *Logger) RegisterFile(w io.Writer, minimumLevel core.Level) (SlotID, error) {
	return l.Register(core.SinkFunc(sinks.WriteFileLine), w, minimumLevel)
}

// Own makes Close close c.
func (l *Logger) Own(c io.Closer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closers = append(l.closers, c)
}

// IsEnabled reports whether an event at level would reach any destination.
func (l *Logger) IsEnabled(level core.Level) bool {
	if !level.IsValid() {
		return false
	}
	if l.defaultEnabled(level) {
		return true
	}
	return l.registry.accepts(level)
}

func (l *Logger) defaultEnabled(level core.Level) bool {
	if l.quiet.Load() || !l.levelSwitch.IsEnabled(level) {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.defaultSink != nil
}

// Write formats a message and dispatches it at level. It returns
// core.ErrInvalidLevel for unknown levels and core.ErrGateTimeout,
// core.ErrGateFailed or the context's error when the gate could not be
// acquired; the message is dropped in those cases. Write never panics because
// of a sink or a gate.
func (l *Logger) Write(ctx context.Context, level core.Level, format string, args ...any) error {
	if err := level.Validate(); err != nil {
		selflog.Printf("[dispatch] message dropped: %v", err)
		return err
	}
	if !l.IsEnabled(level) {
		return nil
	}
	return l.dispatch(ctx, &core.LogEvent{
		Level:   level,
		Format:  format,
		Args:    args,
		Message: fmt.Sprintf(format, args...),
	})
}

// LogSimple dispatches a pre-formatted message, prefixed with file:line when
// file is not empty. msg is not interpreted as a format.
func (l *Logger) LogSimple(level core.Level, file string, line int, msg string) {
	if err := level.Validate(); err != nil {
		selflog.Printf("[dispatch] message dropped: %v", err)
		return
	}
	if !l.IsEnabled(level) {
		return
	}
	message := msg
	if file != "" {
		message = fmt.Sprintf("%s:%d %s", file, line, msg)
	}
	_ = l.dispatch(context.Background(), &core.LogEvent{Level: level, Format: msg, Message: message})
}

func (l *Logger) dispatch(ctx context.Context, event *core.LogEvent) error {
	l.mu.RLock()
	g, timeout, defaultSink := l.gate, l.gateTimeout, l.defaultSink
	l.mu.RUnlock()

	if g != nil {
		if _, ok := ctx.Deadline(); !ok && timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		if err := acquire(ctx, g); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				err = core.ErrGateTimeout
			}
			selflog.Printf("[dispatch] gate not acquired, message dropped: %v", err)
			return err
		}
		defer release(g)
	}

	event.Timestamp = l.clock().Truncate(time.Second)

	if defaultSink != nil && !l.quiet.Load() && l.levelSwitch.IsEnabled(event.Level) {
		emit(defaultSink, event)
	}

	for _, entry := range l.registry.Entries() {
		if !event.Level.Satisfies(entry.MinimumLevel) {
			continue
		}
		e := *event
		e.UserData = entry.UserData
		emit(entry.Sink, &e)
	}
	return nil
}

// acquire takes the gate, turning a panicking gate into core.ErrGateFailed.
func acquire(ctx context.Context, g core.Gate) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: acquire panicked: %v", core.ErrGateFailed, r)
		}
	}()
	return g.Acquire(ctx)
}

// release gives the gate back. A panic is reported to selflog; the event has
// already been delivered.
func release(g core.Gate) {
	defer func() {
		if r := recover(); r != nil {
			selflog.Printf("[dispatch] %v: release panicked: %v", core.ErrGateFailed, r)
		}
	}()
	g.Release()
}

// emit isolates the dispatcher from a panicking sink.
func emit(sink core.LogEventSink, event *core.LogEvent) {
	defer func() {
		if r := recover(); r != nil {
			selflog.Printf("[dispatch] sink %T panicked: %v", sink, r)
		}
	}()
	sink.Emit(event)
}

// Logf dispatches a printf-style message at level. Errors are reported to
// selflog only.
func (l *Logger) Logf(level core.Level, format string, args ...any) {
	_ = l.Write(context.Background(), level, format, args...)
}

// Tracef logs at TRACE.
func (l *Logger) Tracef(format string, args ...any) {
	_ = l.Write(context.Background(), core.TraceLevel, format, args...)
}

// Debugf logs at DEBUG.
func (l *Logger) Debugf(format string, args ...any) {
	_ = l.Write(context.Background(), core.DebugLevel, format, args...)
}

// Infof logs at INFO.
func (l *Logger) Infof(format string, args ...any) {
	_ = l.Write(context.Background(), core.InfoLevel, format, args...)
}

// Warnf logs at WARN.
func (l *Logger) Warnf(format string, args ...any) {
	_ = l.Write(context.Background(), core.WarnLevel, format, args...)
}

// Errorf logs at ERROR.
func (l *Logger) Errorf(format string, args ...any) {
	_ = l.Write(context.Background(), core.ErrorLevel, format, args...)
}

// Fatalf logs at FATAL. It does not exit the process.
func (l *Logger) Fatalf(format string, args ...any) {
	_ = l.Write(context.Background(), core.FatalLevel, format, args...)
}

// Close closes the resources the logger owns: files opened through
// WithFilePath or the process-wide handle, and closers passed to Own.
// Registered sinks and writers passed to RegisterFile stay open.
func (l *Logger) Close() error {
	l.mu.Lock()
	closers := l.closers
	l.closers = nil
	l.mu.Unlock()

	var errs []error
	for _, c := range closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
