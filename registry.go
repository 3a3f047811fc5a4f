package mikrolog

import (
	"fmt"
	"sync"

	"github.com/willibrandon/mikrolog/core"
)

// MaxCallbacks is the default registry capacity.
const MaxCallbacks = 32

// SlotID identifies a registry slot. Slots are numbered in registration order.
type SlotID int

// SinkEntry is one registered sink with the context handed to it and the
// minimum level it receives.
type SinkEntry struct {
	Sink         core.LogEventSink
	UserData     any
	MinimumLevel core.Level
}

// Registry is a fixed-capacity table of sinks. Entries are appended to the
// first empty slot and never removed, so the occupied slots are always a
// prefix of the table.
type Registry struct {
	mu    sync.RWMutex
	slots []SinkEntry
	count int
}

// NewRegistry creates a registry holding at most capacity sinks. A
// non-positive capacity selects MaxCallbacks.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = MaxCallbacks
	}
	return &Registry{slots: make([]SinkEntry, capacity)}
}

// Register stores the sink in the first empty slot. When the table is full
// it returns core.ErrRegistryFull and leaves the table unchanged.
func (r *Registry) Register(sink core.LogEventSink, udata any, minimumLevel core.Level) (SlotID, error) {
	if sink == nil {
		return -1, core.ErrNilSink
	}
	if err := minimumLevel.Validate(); err != nil {
		return -1, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slots {
		if r.slots[i].Sink == nil {
			r.slots[i] = SinkEntry{Sink: sink, UserData: udata, MinimumLevel: minimumLevel}
			r.count++
			return SlotID(i), nil
		}
	}
	return -1, fmt.Errorf("%w: capacity %d", core.ErrRegistryFull, len(r.slots))
}

// Entries returns a snapshot of the occupied slots in registration order,
// stopping at the first empty slot.
func (r *Registry) Entries() []SinkEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]SinkEntry, 0, r.count)
	for _, entry := range r.slots {
		if entry.Sink == nil {
			break
		}
		entries = append(entries, entry)
	}
	return entries
}

// Len returns the number of registered sinks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Cap returns the registry capacity.
func (r *Registry) Cap() int {
	return len(r.slots)
}

// accepts reports whether any registered sink would receive level.
func (r *Registry) accepts(level core.Level) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.slots {
		if entry.Sink == nil {
			return false
		}
		if level.Satisfies(entry.MinimumLevel) {
			return true
		}
	}
	return false
}
