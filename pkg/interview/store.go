package interview

import (
	"context"
	"sync"
)

// StateStore persists the application state as one document under one key.
type StateStore interface {
	// Load returns false when nothing has been saved yet.
	Load(ctx context.Context) (State, bool, error)
	Save(ctx context.Context, s State) error
}

// MemoryStore keeps the last saved state in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	state *State
	saves int
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load(context.Context) (State, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return State{}, false, nil
	}
	return m.state.Clone(), true, nil
}

func (m *MemoryStore) Save(_ context.Context, s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := s.Clone()
	m.state = &c
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
