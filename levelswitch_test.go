package mikrolog

import (
	"errors"
	"sync"
	"testing"

	"github.com/willibrandon/mikrolog/core"
)

func TestNewLevelSwitch(t *testing.T) {
	testCases := []struct {
		name         string
		initialLevel core.Level
		want         core.Level
	}{
		{"Trace", core.TraceLevel, core.TraceLevel},
		{"Debug", core.DebugLevel, core.DebugLevel},
		{"Info", core.InfoLevel, core.InfoLevel},
		{"Warn", core.WarnLevel, core.WarnLevel},
		{"Error", core.ErrorLevel, core.ErrorLevel},
		{"Fatal", core.FatalLevel, core.FatalLevel},
		{"InvalidHigh", core.Level(42), core.TraceLevel},
		{"InvalidLow", core.Level(-1), core.TraceLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ls := NewLevelSwitch(tc.initialLevel)
			if ls.Level() != tc.want {
				t.Errorf("Expected initial level %v, got %v", tc.want, ls.Level())
			}
		})
	}
}

func TestLevelSwitch_IsEnabled(t *testing.T) {
	ls := NewLevelSwitch(core.WarnLevel)

	testCases := []struct {
		testLevel core.Level
		expected  bool
	}{
		{core.TraceLevel, false},
		{core.DebugLevel, false},
		{core.InfoLevel, false},
		{core.WarnLevel, true},
		{core.ErrorLevel, true},
		{core.FatalLevel, true},
	}

	for _, tc := range testCases {
		if got := ls.IsEnabled(tc.testLevel); got != tc.expected {
			t.Errorf("IsEnabled(%v) with minimum WARN: expected %v, got %v", tc.testLevel, tc.expected, got)
		}
	}
}

func TestLevelSwitch_RejectsInvalidLevel(t *testing.T) {
	ls := NewLevelSwitch(core.InfoLevel)

	err := ls.SetLevel(core.Level(42))
	if !errors.Is(err, core.ErrInvalidLevel) {
		t.Fatalf("Expected ErrInvalidLevel, got %v", err)
	}
	if ls.Level() != core.InfoLevel {
		t.Errorf("Expected level to stay INFO, got %v", ls.Level())
	}
}

func TestLevelSwitch_FluentInterface(t *testing.T) {
	ls := NewLevelSwitch(core.InfoLevel)

	testCases := []struct {
		name     string
		set      func() *LevelSwitch
		expected core.Level
	}{
		{"Trace", ls.Trace, core.TraceLevel},
		{"Debug", ls.Debug, core.DebugLevel},
		{"Info", ls.Info, core.InfoLevel},
		{"Warn", ls.Warn, core.WarnLevel},
		{"Error", ls.Error, core.ErrorLevel},
		{"Fatal", ls.Fatal, core.FatalLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.set(); got != ls {
				t.Errorf("Expected fluent call to return the same switch")
			}
			if ls.Level() != tc.expected {
				t.Errorf("Expected level %v, got %v", tc.expected, ls.Level())
			}
		})
	}
}

func TestLevelSwitch_ConcurrentAccess(t *testing.T) {
	ls := NewLevelSwitch(core.InfoLevel)
	levels := core.Levels()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = ls.SetLevel(levels[(i+j)%len(levels)])
				_ = ls.IsEnabled(core.WarnLevel)
			}
		}(i)
	}
	wg.Wait()

	if !ls.Level().IsValid() {
		t.Errorf("Expected a valid level after concurrent updates, got %v", ls.Level())
	}
}

func TestLevelSwitch_SharedBetweenLoggers(t *testing.T) {
	ls := NewLevelSwitch(core.InfoLevel)
	a := New(WithLevelSwitch(ls), WithDefaultSink(nil))
	b := New(WithLevelSwitch(ls), WithDefaultSink(nil))

	if err := a.SetLevel(core.ErrorLevel); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	if b.Level() != core.ErrorLevel {
		t.Errorf("Expected shared switch to report ERROR, got %v", b.Level())
	}
	if b.LevelSwitch() != ls {
		t.Errorf("Expected logger to use the shared switch")
	}
}
