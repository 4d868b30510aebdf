package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryDocument is an in-memory [Document] used as a test double for the
// ledger components.
type MemoryDocument struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewMemoryDocument returns an empty in-memory document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{values: make(map[string]json.RawMessage)}
}

func (m *MemoryDocument) Get(_ context.Context, key string, dest any) error {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode document value (key=%s): %w", key, err)
	}
	return nil
}

func (m *MemoryDocument) Set(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document value (key=%s): %w", key, err)
	}

	m.mu.Lock()
	m.values[key] = payload
	m.mu.Unlock()
	return nil
}

func (m *MemoryDocument) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryDocument) Has(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	_, ok := m.values[key]
	m.mu.RUnlock()
	return ok, nil
}

func (m *MemoryDocument) Clear(_ context.Context) error {
	m.mu.Lock()
	m.values = make(map[string]json.RawMessage)
	m.mu.Unlock()
	return nil
}
