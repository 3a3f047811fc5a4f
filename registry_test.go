package mikrolog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/sinks"
)

func TestRegistryAssignsSlotsInOrder(t *testing.T) {
	r := NewRegistry(0)
	require.Equal(t, MaxCallbacks, r.Cap())

	for i := 0; i < 3; i++ {
		id, err := r.Register(sinks.NewMemorySink(), i, core.InfoLevel)
		require.NoError(t, err)
		assert.Equal(t, SlotID(i), id)
	}

	entries := r.Entries()
	require.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, i, entry.UserData)
	}
	assert.Equal(t, 3, r.Len())
}

func TestRegistryFull(t *testing.T) {
	r := NewRegistry(MaxCallbacks)
	for i := 0; i < MaxCallbacks; i++ {
		_, err := r.Register(sinks.NewMemorySink(), i, core.TraceLevel)
		require.NoError(t, err)
	}
	before := r.Entries()

	id, err := r.Register(sinks.NewMemorySink(), "overflow", core.TraceLevel)

	require.ErrorIs(t, err, core.ErrRegistryFull)
	assert.Equal(t, SlotID(-1), id)
	assert.Equal(t, before, r.Entries())
	assert.Equal(t, MaxCallbacks, r.Len())
}

func TestRegistryCustomCapacity(t *testing.T) {
	r := NewRegistry(2)

	_, err := r.Register(sinks.NewMemorySink(), nil, core.TraceLevel)
	require.NoError(t, err)
	_, err = r.Register(sinks.NewMemorySink(), nil, core.TraceLevel)
	require.NoError(t, err)
	_, err = r.Register(sinks.NewMemorySink(), nil, core.TraceLevel)

	assert.ErrorIs(t, err, core.ErrRegistryFull)
}

func TestRegistryRejectsBadRegistrations(t *testing.T) {
	r := NewRegistry(0)

	_, err := r.Register(nil, nil, core.InfoLevel)
	assert.ErrorIs(t, err, core.ErrNilSink)

	_, err = r.Register(sinks.NewMemorySink(), nil, core.Level(-1))
	assert.ErrorIs(t, err, core.ErrInvalidLevel)

	assert.Zero(t, r.Len())
}

func TestRegistryAccepts(t *testing.T) {
	r := NewRegistry(0)
	assert.False(t, r.accepts(core.FatalLevel), "empty registry accepts nothing")

	_, err := r.Register(sinks.NewMemorySink(), nil, core.WarnLevel)
	require.NoError(t, err)

	assert.False(t, r.accepts(core.InfoLevel))
	assert.True(t, r.accepts(core.WarnLevel))
}

func TestRegistryConcurrentRegister(t *testing.T) {
	r := NewRegistry(MaxCallbacks)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures int
	for i := 0; i < MaxCallbacks+8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Register(sinks.NewMemorySink(), nil, core.TraceLevel); err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, MaxCallbacks, r.Len())
	assert.Equal(t, 8, failures)
	assert.Len(t, r.Entries(), MaxCallbacks)
}
