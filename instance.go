package mikrolog

import (
	"sync"

	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/selflog"
	"github.com/willibrandon/mikrolog/sinks"
)

var (
	instanceMu sync.Mutex
	instance   *Logger
)

// GetInstance returns the process-wide logger, creating it on first use.
// On creation, a non-empty path is created (or truncated) and registered as
// a file sink at level; if the file cannot be opened the logger is created
// without it. Later calls return the same logger and ignore their arguments.
//
// Prefer New and passing the logger explicitly; GetInstance exists for call
// sites that expect a single global logger.
func GetInstance(path string, level core.Level) *Logger {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		return instance
	}

	l := New()
	if path != "" {
		if fs, err := sinks.NewFileSink(path); err != nil {
			selflog.Printf("[instance] log file not opened: %v", err)
		} else if _, err := l.RegisterFile(fs.Writer(), level); err != nil {
			fs.Close()
		} else {
			l.Own(fs)
		}
	}
	instance = l
	return instance
}

// Shutdown flushes and closes the file owned by the process-wide logger and
// forgets the instance, so the next GetInstance creates a new one.
func Shutdown() error {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
