package repository

import (
	"context"

	"roster/internal/domain/entity"
)

// UserRepository adds email lookups to the user store. Email uniqueness is
// enforced here: Create and Update return domainerrors.ErrEmailTaken on conflict.
type UserRepository interface {
	Store[*entity.User]

	// FindByEmail returns ErrRecordNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail is a fast-path check; the unique constraint stays authoritative.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
