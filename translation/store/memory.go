package store

import (
	"context"
	"sync"
)

// Memory is a process-local Store.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
	opts options
}

func NewMemory(opts ...Option) *Memory {
	return &Memory{data: make(map[string][]byte), opts: buildOptions(opts)}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Save(_ context.Context, key string, data []byte) error {
	if err := m.opts.checkQuota(data); err != nil {
		return err
	}
	v := make([]byte, len(data))
	copy(v, data)
	m.mu.Lock()
	m.data[key] = v
	m.mu.Unlock()
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
