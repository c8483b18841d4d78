package storage

import (
	"context"
	"sync"
)

// Memory is an in-process KeyValueStorage. Used in tests and as a
// scratch store; nothing survives the process.
type Memory struct {
	items  map[string][]byte
	mu     sync.RWMutex
	closed bool
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

// GetItem returns a copy of the stored value
func (m *Memory) GetItem(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStorageClosed
	}
	v, ok := m.items[key]
	if !ok {
		return nil, ErrItemNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// SetItem stores a copy of value
func (m *Memory) SetItem(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageClosed
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.items[key] = v
	return nil
}

// RemoveItem deletes key
func (m *Memory) RemoveItem(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageClosed
	}
	delete(m.items, key)
	return nil
}

// Close marks the store as closed
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
