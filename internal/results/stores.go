package results

import (
	"slices"
	"sync"

	"suggestbox/internal/domain"
)

// MemoryResultStore is an in-memory implementation of ResultStore
type MemoryResultStore struct {
	mu      sync.RWMutex
	results []domain.Result
}

// NewMemoryResultStore creates a new memory-based result store
func NewMemoryResultStore(initial []domain.Result) *MemoryResultStore {
	return &MemoryResultStore{
		results: slices.Clone(initial),
	}
}

func (s *MemoryResultStore) GetAll() []domain.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	return slices.Clone(s.results)
}

func (s *MemoryResultStore) Add(results ...domain.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, results...)
}

func (s *MemoryResultStore) Replace(results []domain.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = slices.Clone(results)
}

func (s *MemoryResultStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
