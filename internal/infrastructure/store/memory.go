package store

import (
	"context"
	"sync"

	"github.com/stokradar/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory catalog store. The catalog is held
// as a single slice that is swapped wholesale on replacement, so a snapshot
// taken during a concurrent replace sees either the old generation or the
// new one, never a mix.
type MemoryStore struct {
	products []domain.Product
	mutex    sync.RWMutex
}

// NewMemoryStore creates a new empty in-memory catalog store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ReplaceAll swaps the entire catalog for the given products
func (s *MemoryStore) ReplaceAll(ctx context.Context, products []domain.Product) error {
	replacement := make([]domain.Product, len(products))
	copy(replacement, products)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.products = replacement
	return nil
}

// Snapshot returns a copy of the catalog in insertion order
func (s *MemoryStore) Snapshot(ctx context.Context) ([]domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snapshot := make([]domain.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot, nil
}

// Count returns the number of stored products
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.products), nil
}

// Clear removes every product and returns how many were deleted
func (s *MemoryStore) Clear(ctx context.Context) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	deleted := len(s.products)
	s.products = nil
	return deleted, nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
