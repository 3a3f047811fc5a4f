package mikrolog

import (
	"sync/atomic"

	"github.com/willibrandon/mikrolog/core"
)

// LevelSwitch holds the global minimum level applied to the default sink.
// It is safe for concurrent use and may be shared between loggers so one
// switch controls several of them.
type LevelSwitch struct {
	level atomic.Int32
}

// NewLevelSwitch creates a level switch with the specified initial level.
// An invalid initial level selects TRACE.
func NewLevelSwitch(initialLevel core.Level) *LevelSwitch {
	if !initialLevel.IsValid() {
		initialLevel = core.TraceLevel
	}
	ls := &LevelSwitch{}
	ls.level.Store(int32(initialLevel))
	return ls
}

// Level returns the current minimum level.
func (ls *LevelSwitch) Level() core.Level {
	return core.Level(ls.level.Load())
}

// SetLevel updates the minimum level. Levels outside TRACE..FATAL are
// rejected with core.ErrInvalidLevel and the switch keeps its value.
func (ls *LevelSwitch) SetLevel(level core.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}
	ls.level.Store(int32(level))
	return nil
}

// IsEnabled reports whether level passes the switch.
func (ls *LevelSwitch) IsEnabled(level core.Level) bool {
	return level.Satisfies(ls.Level())
}

// Trace sets the minimum level to TRACE.
func (ls *LevelSwitch) Trace() *LevelSwitch {
	ls.level.Store(int32(core.TraceLevel))
	return ls
}

// Debug sets the minimum level to DEBUG.
func (ls *LevelSwitch) Debug() *LevelSwitch {
	ls.level.Store(int32(core.DebugLevel))
	return ls
}

// Info sets the minimum level to INFO.
func (ls *LevelSwitch) Info() *LevelSwitch {
	ls.level.Store(int32(core.InfoLevel))
	return ls
}

// Warn sets the minimum level to WARN.
func (ls *LevelSwitch) Warn() *LevelSwitch {
	ls.level.Store(int32(core.WarnLevel))
	return ls
}

// Error sets the minimum level to ERROR.
func (ls *LevelSwitch) Error() *LevelSwitch {
	ls.level.Store(int32(core.ErrorLevel))
	return ls
}

// Fatal sets the minimum level to FATAL.
func (ls *LevelSwitch) Fatal() *LevelSwitch {
	ls.level.Store(int32(core.FatalLevel))
	return ls
}
