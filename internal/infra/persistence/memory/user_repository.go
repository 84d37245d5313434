package memory

import (
	"context"
	"slices"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
)

type userRepository struct {
	*store[*entity.User]
}

// NewUserRepository returns an empty user store with unique emails.
func NewUserRepository() repository.UserRepository {
	s := newStore(cloneUser)
	s.uniqueKey = func(u *entity.User) string { return u.Email }
	s.conflictErr = domainerrors.ErrEmailTaken.WrapMessage("email already exists")

	return &userRepository{store: s}
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.findFirst(func(u *entity.User) bool { return u.Email == email })
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	return user, nil
}

func (r *userRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.findFirst(func(u *entity.User) bool { return u.Email == email })

	return ok, nil
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}

	cloned := *u
	cloned.StoredSalt = slices.Clone(u.StoredSalt)
	cloned.StoredHash = slices.Clone(u.StoredHash)

	return &cloned
}
