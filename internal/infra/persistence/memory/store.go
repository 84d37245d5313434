// Package memory provides process-local stores used by the memory storage
// driver and by usecase tests.
package memory

import (
	"context"
	"sync"
	"time"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/errors"

	"github.com/google/uuid"
)

// store keeps records in insertion order. Records are cloned on the way in and
// out so callers never share memory with the store.
type store[T entity.Resource] struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	records map[uuid.UUID]T
	clone   func(T) T

	// uniqueKey, when set, must be distinct across records.
	uniqueKey   func(T) string
	conflictErr error
}

func newStore[T entity.Resource](clone func(T) T) *store[T] {
	return &store[T]{
		records: make(map[uuid.UUID]T),
		clone:   clone,
	}
}

func (s *store[T]) FindByID(_ context.Context, id uuid.UUID) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		var zero T

		return zero, repository.ErrRecordNotFound
	}

	return s.clone(record), nil
}

func (s *store[T]) FindAll(_ context.Context, offset, limit int) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 || limit <= 0 || offset >= len(s.order) {
		return []T{}, nil
	}

	end := min(offset+limit, len(s.order))
	result := make([]T, 0, end-offset)
	for _, id := range s.order[offset:end] {
		result = append(result, s.clone(s.records[id]))
	}

	return result, nil
}

func (s *store[T]) Create(_ context.Context, resource T) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflicts(resource, uuid.Nil) {
		return s.conflictErr
	}

	createdAt := resource.ResourceCreatedAt()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	resource.SetIdentity(id, createdAt)

	s.records[id] = s.clone(resource)
	s.order = append(s.order, id)

	return nil
}

func (s *store[T]) Update(_ context.Context, resource T) error {
	id := resource.ResourceID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return repository.ErrRecordNotFound
	}
	if s.conflicts(resource, id) {
		return s.conflictErr
	}

	s.records[id] = s.clone(resource)

	return nil
}

func (s *store[T]) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return repository.ErrRecordNotFound
	}

	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}

	return nil
}

// findFirst returns the first record in insertion order matching the predicate.
func (s *store[T]) findFirst(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if record := s.records[id]; match(record) {
			return s.clone(record), true
		}
	}

	var zero T

	return zero, false
}

// conflicts must be called with the write lock held.
func (s *store[T]) conflicts(resource T, self uuid.UUID) bool {
	if s.uniqueKey == nil {
		return false
	}

	key := s.uniqueKey(resource)
	for id, record := range s.records {
		if id != self && s.uniqueKey(record) == key {
			return true
		}
	}

	return false
}
