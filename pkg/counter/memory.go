package counter

import (
	"context"
	"sync"
)

// Memory is an in-process Store for local runs and tests.
type Memory struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{counts: make(map[string]int64)}
}

func (m *Memory) IncrementBy(_ context.Context, userID string, delta int64) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	m.mu.Lock()
	m.counts[userID] += delta
	m.mu.Unlock()
	return nil
}

// Count returns the current counter for userID.
func (m *Memory) Count(userID string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[userID]
}
