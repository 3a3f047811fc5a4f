// Package gate provides exclusion gates for the mikrolog dispatcher.
//
// A gate is acquired before a log call fans out to its sinks and released
// afterwards, so the sinks of one call never interleave with another's.
//
//	logger := mikrolog.New(mikrolog.WithGate(gate.NewMutex()))
//
// Use NewSemaphore when callers must not block forever:
//
//	logger := mikrolog.New(
//	    mikrolog.WithGate(gate.NewSemaphore()),
//	    mikrolog.WithGateTimeout(50*time.Millisecond),
//	)
package gate

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/willibrandon/mikrolog/core"
)

// Mutex is a gate backed by sync.Mutex. It ignores context deadlines.
type Mutex struct {
	mu sync.Mutex
}

var _ core.Gate = (*Mutex)(nil)

// NewMutex creates a mutex gate.
func NewMutex() *Mutex {
	return &Mutex{}
}

// Acquire locks the mutex.
func (m *Mutex) Acquire(context.Context) error {
	m.mu.Lock()
	return nil
}

// Release unlocks the mutex.
func (m *Mutex) Release() {
	m.mu.Unlock()
}

// Semaphore is a gate backed by a weighted semaphore of size one. Acquire
// honours context deadlines and cancellation.
type Semaphore struct {
	sem *semaphore.Weighted
}

var _ core.Gate = (*Semaphore)(nil)

// NewSemaphore creates a semaphore gate.
func NewSemaphore() *Semaphore {
	return &Semaphore{sem: semaphore.NewWeighted(1)}
}

// Acquire waits for the semaphore. A deadline expiry is reported as
// core.ErrGateTimeout; plain cancellation returns the context error.
func (s *Semaphore) Acquire(ctx context.Context) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return core.ErrGateTimeout
		}
		return err
	}
	return nil
}

// TryAcquire acquires the semaphore without blocking.
func (s *Semaphore) TryAcquire() bool {
	return s.sem.TryAcquire(1)
}

// Release releases the semaphore.
func (s *Semaphore) Release() {
	s.sem.Release(1)
}

// hook adapts a core.LockFunc.
type hook struct {
	fn    core.LockFunc
	udata any
}

// Func adapts a lock/unlock hook to a gate: Acquire calls fn(true, udata)
// and Release calls fn(false, udata). A nil fn yields a nil gate.
func Func(fn core.LockFunc, udata any) core.Gate {
	if fn == nil {
		return nil
	}
	return &hook{fn: fn, udata: udata}
}

func (h *hook) Acquire(context.Context) error {
	h.fn(true, h.udata)
	return nil
}

func (h *hook) Release() {
	h.fn(false, h.udata)
}
