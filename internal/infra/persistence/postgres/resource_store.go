// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resourceStore implements repository.Store[E] for any entity/model pair.
// Lists are ordered by created_at then id; ids are UUIDv7 so ties keep insertion order.
type resourceStore[E entity.Resource, M any] struct {
	db         *gorm.DB
	toDomain   func(*M) E
	fromDomain func(E) *M
	// mapWriteErr converts constraint violations into domain errors.
	mapWriteErr func(err error, op string) error
}

func (s *resourceStore[E, M]) FindByID(ctx context.Context, id uuid.UUID) (E, error) {
	var zero E
	var m M

	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, repository.ErrRecordNotFound
		}

		return zero, errors.Wrap(err, "failed to find record by id")
	}

	return s.toDomain(&m), nil
}

func (s *resourceStore[E, M]) FindAll(ctx context.Context, offset, limit int) ([]E, error) {
	var models []*M

	if err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	result := make([]E, 0, len(models))
	for _, m := range models {
		result = append(result, s.toDomain(m))
	}

	return result, nil
}

// Create assigns a UUIDv7 and, if unset, the creation time before inserting.
func (s *resourceStore[E, M]) Create(ctx context.Context, resource E) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate id")
	}

	createdAt := resource.ResourceCreatedAt()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	resource.SetIdentity(id, createdAt)

	if err := s.db.WithContext(ctx).Create(s.fromDomain(resource)).Error; err != nil {
		resource.SetIdentity(uuid.Nil, createdAt)

		return s.mapWriteErr(err, "create")
	}

	return nil
}

// Update overwrites every column of the row; a missing row reports ErrRecordNotFound.
func (s *resourceStore[E, M]) Update(ctx context.Context, resource E) error {
	result := s.db.WithContext(ctx).
		Model(new(M)).
		Where("id = ?", resource.ResourceID()).
		Select("*").
		Updates(s.fromDomain(resource))
	if result.Error != nil {
		return s.mapWriteErr(result.Error, "update")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

func (s *resourceStore[E, M]) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(M))
	if result.Error != nil {
		return s.mapWriteErr(result.Error, "delete")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}
