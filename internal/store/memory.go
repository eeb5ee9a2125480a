package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is the in-process backend: always available, no persistence
// across restarts, no bulk query. Safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs map[Kind]map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[Kind]map[string][]byte)}
}

func (m *Memory) Save(_ context.Context, kind Kind, id string, doc json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID, ok := m.docs[kind]
	if !ok {
		byID = make(map[string][]byte)
		m.docs[kind] = byID
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	byID[id] = cp
	return nil
}

func (m *Memory) Get(_ context.Context, kind Kind, id string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.docs[kind][id]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, nil
}

func (m *Memory) Delete(_ context.Context, kind Kind, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[kind][id]; !ok {
		return false, nil
	}
	delete(m.docs[kind], id)
	return true, nil
}

func (m *Memory) Close() error { return nil }
