package postgres

import (
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type antiHeroRepository struct {
	resourceStore[*entity.AntiHero, model.AntiHeroModel]
}

// NewAntiHeroRepository is the constructor for antiHeroRepository.
func NewAntiHeroRepository(db *gorm.DB) repository.AntiHeroRepository {
	return &antiHeroRepository{
		resourceStore: resourceStore[*entity.AntiHero, model.AntiHeroModel]{
			db:          db,
			toDomain:    toAntiHeroDomain,
			fromDomain:  fromAntiHeroDomain,
			mapWriteErr: mapAntiHeroWriteError,
		},
	}
}

func mapAntiHeroWriteError(err error, op string) error {
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidInput.WrapMessage("missing required anti-hero information")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to "+op+" anti-hero")
}

func toAntiHeroDomain(data *model.AntiHeroModel) *entity.AntiHero {
	if data == nil {
		return nil
	}

	return &entity.AntiHero{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		House:     data.House,
		KnownAs:   data.KnownAs,
		CreatedAt: data.CreatedAt,
	}
}

func fromAntiHeroDomain(data *entity.AntiHero) *model.AntiHeroModel {
	if data == nil {
		return nil
	}

	return &model.AntiHeroModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		House:     data.House,
		KnownAs:   data.KnownAs,
		CreatedAt: data.CreatedAt,
	}
}
