package gate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/mikrolog/core"
)

func TestMutexSerializes(t *testing.T) {
	g := NewMutex()
	var active, peak int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Acquire(context.Background()))
			mu.Lock()
			active++
			if active > peak {
				peak = active
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			active--
			mu.Unlock()
			g.Release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, peak)
}

func TestSemaphoreTimeout(t *testing.T) {
	g := NewSemaphore()
	require.NoError(t, g.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := g.Acquire(ctx)
	assert.ErrorIs(t, err, core.ErrGateTimeout)

	g.Release()
	assert.True(t, g.TryAcquire())
	g.Release()
}

func TestSemaphoreCancel(t *testing.T) {
	g := NewSemaphore()
	require.NoError(t, g.Acquire(context.Background()))
	defer g.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Acquire(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFunc(t *testing.T) {
	var calls []bool
	var seen []any
	g := Func(func(lock bool, udata any) {
		calls = append(calls, lock)
		seen = append(seen, udata)
	}, "ctx")

	require.NoError(t, g.Acquire(context.Background()))
	g.Release()

	assert.Equal(t, []bool{true, false}, calls)
	assert.Equal(t, []any{"ctx", "ctx"}, seen)
}

func TestFuncNil(t *testing.T) {
	assert.Nil(t, Func(nil, nil))
}
