// Package memstore is an in-memory store.Store for tests and hosts
// that don't need durable history.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/textform/pkg/textform/catalog"
	"github.com/cognicore/textform/pkg/textform/internalerr"
	"github.com/cognicore/textform/pkg/textform/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.RWMutex
	records map[string]store.Record
	order   []string // record ids, insertion order
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		records: make(map[string]store.Record),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRecord inserts or replaces a record by id.
func (s *Store) SaveRecord(ctx context.Context, r store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[r.ID]; !exists {
		s.order = append(s.order, r.ID)
	}
	s.records[r.ID] = r
	return nil
}

// GetRecord fetches one record by id.
func (s *Store) GetRecord(ctx context.Context, id string) (store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return store.Record{}, internalerr.ErrNotFound
	}
	return r, nil
}

// GetByHash returns the most recent record carrying the given input
// hash.
func (s *Store) GetByHash(ctx context.Context, hash string) (store.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best store.Record
	found := false
	for _, r := range s.records {
		if r.InputHash != hash {
			continue
		}
		if !found || r.CreatedAt.After(best.CreatedAt) {
			best = r
			found = true
		}
	}
	return best, found, nil
}

// ListRecent returns up to limit records, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CountByFormat tallies stored records per predicted format.
func (s *Store) CountByFormat(ctx context.Context) (map[catalog.Format]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[catalog.Format]int64)
	for _, r := range s.records {
		counts[r.Format]++
	}
	return counts, nil
}
