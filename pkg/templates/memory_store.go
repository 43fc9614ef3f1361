package templates

import (
	"context"
	"sync"
)

// MemoryStore is a minimal in-memory Store implementation. Unlike a Spec, a
// template store is shared infrastructure, so access is guarded.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Template
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]Template{}}
}

func (s *MemoryStore) Load(_ context.Context, name string) (Template, bool, error) {
	s.mu.RLock()
	record, ok := s.records[name]
	s.mu.RUnlock()
	if !ok {
		return Template{}, false, nil
	}
	return record.clone(), true, nil
}

func (s *MemoryStore) Save(_ context.Context, name string, tpl Template) error {
	s.mu.Lock()
	s.records[name] = tpl.clone()
	s.mu.Unlock()
	return nil
}
