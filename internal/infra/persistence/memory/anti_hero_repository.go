package memory

import (
	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
)

type antiHeroRepository struct {
	*store[*entity.AntiHero]
}

// NewAntiHeroRepository returns an empty anti-hero store.
func NewAntiHeroRepository() repository.AntiHeroRepository {
	return &antiHeroRepository{store: newStore(cloneAntiHero)}
}

func cloneAntiHero(a *entity.AntiHero) *entity.AntiHero {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}
