package usecase

import (
	"context"
	"math"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"

	"github.com/google/uuid"
)

// Page selects Size records after skipping Size*Number.
type Page struct {
	Size   int
	Number int
}

// Offset is the number of records skipped before the page starts. It
// saturates at math.MaxInt so an oversized page number lands past the end.
func (p Page) Offset() int {
	if p.Size <= 0 || p.Number <= 0 {
		return 0
	}
	if p.Number > math.MaxInt/p.Size {
		return math.MaxInt
	}

	return p.Size * p.Number
}

// Validate rejects non-positive sizes and negative page numbers.
func (p Page) Validate() error {
	if p.Size <= 0 {
		return domainerrors.ErrInvalidInput.WrapMessage("page size must be positive")
	}
	if p.Number < 0 {
		return domainerrors.ErrInvalidInput.WrapMessage("page number must not be negative")
	}

	return nil
}

// ResourceUsecase is the lookup-or-fail CRUD contract shared by every
// resource collection. Missing identifiers always surface as
// *domainerrors.NotFoundError.
type ResourceUsecase[T entity.Resource] interface {
	FindByID(ctx context.Context, id uuid.UUID) (T, error)
	Create(ctx context.Context, resource T) (T, error)
	// Update keeps id and the stored creation time regardless of what resource carries.
	Update(ctx context.Context, id uuid.UUID, resource T) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page Page) ([]T, error)
}

// UserResourceUsecase serves the principal collection.
type UserResourceUsecase = ResourceUsecase[*entity.User]

// AntiHeroUsecase serves the anti-hero collection.
type AntiHeroUsecase = ResourceUsecase[*entity.AntiHero]
