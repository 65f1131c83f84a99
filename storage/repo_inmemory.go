package storage

import (
	"context"
	"sync"
)

// InMemoryRepo is a thread-safe in-memory implementation of Repo
type InMemoryRepo struct {
	mu     sync.RWMutex
	values map[string][]byte
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates an empty in-memory repo
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		values: make(map[string][]byte),
	}
}

func (r *InMemoryRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	// Return a copy to prevent external modifications
	return append([]byte(nil), v...), nil
}

func (r *InMemoryRepo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = append([]byte(nil), value...)
	return nil
}

func (r *InMemoryRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}

func (r *InMemoryRepo) Close() error {
	return nil
}
