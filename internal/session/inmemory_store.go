package session

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryStore implements Store for tests and local demos.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string][]SessionRecord // userID -> records in insertion order
}

// NewInMemoryStore constructs an in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[string][]SessionRecord),
	}
}

// Insert appends a record for the user, assigning an id when missing.
func (s *InMemoryStore) Insert(_ context.Context, record SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	s.records[record.UserID] = append(s.records[record.UserID], record)
	return nil
}

// FindByUser returns up to limit records in insertion order.
func (s *InMemoryStore) FindByUser(_ context.Context, userID string, limit int) ([]SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.records[userID]
	if limit > 0 && len(stored) > limit {
		stored = stored[:limit]
	}
	return append([]SessionRecord(nil), stored...), nil
}

// FindRecentByUser returns up to limit records sorted newest first.
func (s *InMemoryStore) FindRecentByUser(_ context.Context, userID string, limit int) ([]SessionRecord, error) {
	s.mu.RLock()
	results := append([]SessionRecord(nil), s.records[userID]...)
	s.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Count returns the number of stored records for the user.
func (s *InMemoryStore) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[userID])
}
