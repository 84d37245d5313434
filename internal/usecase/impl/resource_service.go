// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/usecase"

	"github.com/google/uuid"
)

// resourceService implements ResourceUsecase once for any resource kind.
// Uniqueness and write atomicity are left to the store.
type resourceService[T entity.Resource] struct {
	kind   string
	store  repository.Store[T]
	logger *slog.Logger
}

// NewResourceService binds the generic service to one store. kind names the
// collection in not-found errors.
func NewResourceService[T entity.Resource](kind string, store repository.Store[T], logger *slog.Logger) usecase.ResourceUsecase[T] {
	return &resourceService[T]{
		kind:   kind,
		store:  store,
		logger: logger,
	}
}

// NewUserResourceService is the fx constructor for the principal collection.
func NewUserResourceService(repo repository.UserRepository, logger *slog.Logger) usecase.UserResourceUsecase {
	return NewResourceService[*entity.User](entity.KindUser, repo, logger)
}

// NewAntiHeroService is the fx constructor for the anti-hero collection.
func NewAntiHeroService(repo repository.AntiHeroRepository, logger *slog.Logger) usecase.AntiHeroUsecase {
	return NewResourceService[*entity.AntiHero](entity.KindAntiHero, repo, logger)
}

func (srv *resourceService[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *resourceService[T]) notFound(id uuid.UUID) error {
	return domainerrors.NewNotFoundError(srv.kind, id)
}

// FindByID is the lookup-or-fail primitive every mutation goes through.
func (srv *resourceService[T]) FindByID(ctx context.Context, id uuid.UUID) (T, error) {
	resource, err := srv.store.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		var zero T

		return zero, srv.notFound(id)
	}
	if err != nil {
		var zero T

		return zero, errors.Wrapf(err, "failed to find %s", srv.kind)
	}

	return resource, nil
}

func (srv *resourceService[T]) Create(ctx context.Context, resource T) (T, error) {
	if err := srv.store.Create(ctx, resource); err != nil {
		var zero T

		return zero, errors.Wrapf(err, "failed to create %s", srv.kind)
	}

	srv.log(ctx).Debug("Resource created", slog.String("kind", srv.kind), slog.String("id", resource.ResourceID().String()))

	return resource, nil
}

func (srv *resourceService[T]) Update(ctx context.Context, id uuid.UUID, resource T) (T, error) {
	existing, err := srv.FindByID(ctx, id)
	if err != nil {
		var zero T

		return zero, err
	}

	resource.SetIdentity(id, existing.ResourceCreatedAt())

	if err := srv.store.Update(ctx, resource); err != nil {
		var zero T
		if errors.Is(err, repository.ErrRecordNotFound) {
			return zero, srv.notFound(id)
		}

		return zero, errors.Wrapf(err, "failed to update %s", srv.kind)
	}

	return resource, nil
}

func (srv *resourceService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.FindByID(ctx, id); err != nil {
		return err
	}

	if err := srv.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return srv.notFound(id)
		}

		return errors.Wrapf(err, "failed to delete %s", srv.kind)
	}

	srv.log(ctx).Debug("Resource deleted", slog.String("kind", srv.kind), slog.String("id", id.String()))

	return nil
}

func (srv *resourceService[T]) List(ctx context.Context, page usecase.Page) ([]T, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	resources, err := srv.store.FindAll(ctx, page.Offset(), page.Size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", srv.kind)
	}

	return resources, nil
}
