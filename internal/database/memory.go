package database

import (
	"context"
	"slices"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	tasks []string
}

// NewMemoryStore returns an empty Store kept in process memory.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) AddTask(_ context.Context, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, description)
	return nil
}

func (s *memoryStore) ListTasks(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *memoryStore) RemoveTask(_ context.Context, description string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.tasks, description)
	if idx < 0 {
		return false, nil
	}
	s.tasks = slices.Delete(s.tasks, idx, idx+1)
	return true, nil
}

func (s *memoryStore) Close() error { return nil }
