package repository

import "roster/internal/domain/entity"

// AntiHeroRepository stores catalog entries.
type AntiHeroRepository interface {
	Store[*entity.AntiHero]
}
