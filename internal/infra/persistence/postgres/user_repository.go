package postgres

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	resourceStore[*entity.User, model.UserModel]
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		resourceStore: resourceStore[*entity.User, model.UserModel]{
			db:          db,
			toDomain:    toUserDomain,
			fromDomain:  fromUserDomain,
			mapWriteErr: mapUserWriteError,
		},
	}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail reports whether any user already holds the email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check user email")
	}

	return count > 0, nil
}

func mapUserWriteError(err error, op string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrInvalidInput.WrapMessage("missing required user information")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to "+op+" user")
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		MobileNumber: data.MobileNumber,
		StoredSalt:   data.StoredSalt,
		StoredHash:   data.StoredHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		MobileNumber: data.MobileNumber,
		StoredSalt:   data.StoredSalt,
		StoredHash:   data.StoredHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
