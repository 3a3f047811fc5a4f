package core

import "context"

// Gate serializes dispatch across concurrent callers. Acquire is invoked
// before fan-out begins and Release after the last sink returns.
type Gate interface {
	// Acquire blocks until the caller holds the gate. Implementations that
	// support deadlines return ErrGateTimeout when ctx expires first.
	Acquire(ctx context.Context) error

	// Release gives the gate back.
	Release()
}

// LockFunc is a single lock/unlock hook: lock is true to acquire and false
// to release. udata is the opaque value supplied when the hook was installed.
type LockFunc func(lock bool, udata any)
