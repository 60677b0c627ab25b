package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process store used by tests and offline development.
// It can simulate the original client mock's network latency with an
// artificial per-operation delay.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string][]byte
	delay time.Duration
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// NewMemoryStoreWithLatency creates an in-memory store that sleeps for the
// given duration on every operation.
func NewMemoryStoreWithLatency(delay time.Duration) *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte), delay: delay}
}

func (m *MemoryStore) sleep(ctx context.Context) error {
	if m.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(m.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MemoryStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (m *MemoryStore) Save(ctx context.Context, key string, data []byte) error {
	if err := m.sleep(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.data[key] = stored
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := m.sleep(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
