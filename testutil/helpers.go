// Package testutil holds helpers shared by the mikrolog tests.
package testutil

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// Eventually waits for a condition to be true within the timeout period.
// It checks the condition every 10ms until it returns true or the timeout expires.
func Eventually(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	if message != "" {
		t.Fatal(message)
	} else {
		t.Fatal("Condition not met within timeout")
	}
}

// GateProbe is a core.Gate that serializes holders with a mutex and records
// how many holders overlapped. MaxHolders greater than one means the gate
// was bypassed.
type GateProbe struct {
	mu         sync.Mutex
	holders    atomic.Int32
	maxHolders atomic.Int32
	acquires   atomic.Int64
}

// Acquire locks the probe.
func (g *GateProbe) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	g.acquires.Add(1)
	n := g.holders.Add(1)
	for {
		max := g.maxHolders.Load()
		if n <= max || g.maxHolders.CompareAndSwap(max, n) {
			break
		}
	}
	return nil
}

// Release unlocks the probe.
func (g *GateProbe) Release() {
	g.holders.Add(-1)
	g.mu.Unlock()
}

// Holders returns the number of goroutines currently inside the gate.
func (g *GateProbe) Holders() int {
	return int(g.holders.Load())
}

// MaxHolders returns the highest number of simultaneous holders seen.
func (g *GateProbe) MaxHolders() int {
	return int(g.maxHolders.Load())
}

// Acquires returns how many times the gate was acquired.
func (g *GateProbe) Acquires() int64 {
	return g.acquires.Load()
}
