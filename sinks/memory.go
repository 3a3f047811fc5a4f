package sinks

import (
	"strings"
	"sync"

	"github.com/willibrandon/mikrolog/core"
)

// MemorySink stores log events in memory for testing purposes.
type MemorySink struct {
	events []core.LogEvent
	mu     sync.RWMutex
}

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		events: make([]core.LogEvent, 0),
	}
}

// Emit stores a copy of the event.
func (m *MemorySink) Emit(event *core.LogEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	eventCopy := *event
	if event.Args != nil {
		eventCopy.Args = append([]any(nil), event.Args...)
	}
	m.events = append(m.events, eventCopy)
}

// Events returns a copy of all stored events.
func (m *MemorySink) Events() []core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]core.LogEvent, len(m.events))
	copy(result, m.events)
	return result
}

// Lines returns the stored events rendered as file lines, without the
// trailing newline.
func (m *MemorySink) Lines() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines := make([]string, 0, len(m.events))
	var buf []byte
	for i := range m.events {
		buf = AppendFileLine(buf[:0], &m.events[i])
		lines = append(lines, strings.TrimSuffix(string(buf), "\n"))
	}
	return lines
}

// Messages returns the rendered message of every stored event.
func (m *MemorySink) Messages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := make([]string, len(m.events))
	for i, e := range m.events {
		messages[i] = e.Message
	}
	return messages
}

// Clear removes all stored events.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = m.events[:0]
}

// Count returns the number of stored events.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// LastEvent returns the most recent event, or nil if no events.
func (m *MemorySink) LastEvent() *core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.events) == 0 {
		return nil
	}
	event := m.events[len(m.events)-1]
	return &event
}
