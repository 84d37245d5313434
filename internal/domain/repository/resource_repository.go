// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned by any store when the identifier has no row.
// The usecase layer turns it into a kind-specific not-found error.
var ErrRecordNotFound = errors.New("record not found")

// Store is the persistence contract shared by every resource collection.
// Implementations list in insertion order and provide their own atomicity
// for single-record writes.
type Store[T any] interface {
	// FindByID returns ErrRecordNotFound when no record has the identifier.
	FindByID(ctx context.Context, id uuid.UUID) (T, error)

	// FindAll returns at most limit records after skipping offset, in insertion order.
	FindAll(ctx context.Context, offset, limit int) ([]T, error)

	// Create assigns the identifier (and creation time when unset) and persists the record.
	Create(ctx context.Context, resource T) error

	// Update overwrites the full record with the same identifier.
	Update(ctx context.Context, resource T) error

	// Delete removes the record with the identifier.
	Delete(ctx context.Context, id uuid.UUID) error
}
