package favorites

import (
	"context"
	"sync"
)

// MemoryStore keeps the favorite id set in memory. It is the default backend
// and the test double for the Store contract.
type MemoryStore struct {
	mu  sync.RWMutex
	ids map[int]struct{}
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[int]struct{})}
}

// SavedIDs returns a copy of the current id set.
func (s *MemoryStore) SavedIDs(ctx context.Context) (map[int]struct{}, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// Save adds an id to the set.
func (s *MemoryStore) Save(ctx context.Context, id int) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids[id] = struct{}{}
	return nil
}

// Delete removes an id from the set.
func (s *MemoryStore) Delete(ctx context.Context, id int) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ids, id)
	return nil
}
