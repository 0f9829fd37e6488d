// Package diagtest provides an in-memory diag.Logger for tests.
package diagtest

import (
	"strings"
	"sync"
	"time"

	"github.com/nunajera/assistant-relay/internal/diag"
)

// Memory keeps formatted lines in process so tests can inspect them.
type Memory struct {
	mu    sync.Mutex
	lines []string
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{lines: make([]string, 0, 64), now: time.Now}
}

func (m *Memory) Log(args ...any) {
	line := diag.FormatLine(m.now(), args...)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, line)
}

func (m *Memory) All() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]string, len(m.lines))
	copy(cp, m.lines)
	return cp
}

// Contains reports whether any line holds substr.
func (m *Memory) Contains(substr string) bool {
	for _, l := range m.All() {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = m.lines[:0]
}
