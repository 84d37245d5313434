package memory

import (
	"context"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAntiHeroes(t *testing.T, repo repository.AntiHeroRepository, names ...string) []*entity.AntiHero {
	t.Helper()

	created := make([]*entity.AntiHero, 0, len(names))
	for _, name := range names {
		hero := entity.NewAntiHero(name, "", "", "")
		require.NoError(t, repo.Create(context.Background(), hero))
		created = append(created, hero)
	}

	return created
}

func TestStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAntiHeroRepository()

	hero := entity.NewAntiHero("Deadpool", "Wilson", "Marvel", "Merc")
	createdAt := hero.CreatedAt
	require.NoError(t, repo.Create(ctx, hero))

	assert.NotEqual(t, uuid.Nil, hero.ID)
	assert.Equal(t, createdAt, hero.CreatedAt)

	found, err := repo.FindByID(ctx, hero.ID)
	require.NoError(t, err)
	assert.Equal(t, hero, found)

	found.FirstName = "changed"
	again, err := repo.FindByID(ctx, hero.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deadpool", again.FirstName)
}

func TestStore_FindByIDMissing(t *testing.T) {
	_, err := NewAntiHeroRepository().FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestStore_FindAllPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewAntiHeroRepository()
	seedAntiHeroes(t, repo, "A", "B", "C", "D", "E")

	tests := []struct {
		name   string
		offset int
		limit  int
		want   []string
	}{
		{name: "first page", offset: 0, limit: 2, want: []string{"A", "B"}},
		{name: "second page", offset: 2, limit: 2, want: []string{"C", "D"}},
		{name: "partial last page", offset: 4, limit: 2, want: []string{"E"}},
		{name: "past the end", offset: 10, limit: 2, want: []string{}},
		{name: "zero limit", offset: 0, limit: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.FindAll(ctx, tt.offset, tt.limit)
			require.NoError(t, err)

			names := make([]string, 0, len(page))
			for _, hero := range page {
				names = append(names, hero.FirstName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestStore_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAntiHeroRepository()
	heroes := seedAntiHeroes(t, repo, "A", "B", "C")

	t.Run("update replaces the record", func(t *testing.T) {
		updated := *heroes[1]
		updated.KnownAs = "Bee"
		require.NoError(t, repo.Update(ctx, &updated))

		found, err := repo.FindByID(ctx, heroes[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "Bee", found.KnownAs)
	})

	t.Run("update of a missing record", func(t *testing.T) {
		missing := entity.NewAntiHero("X", "", "", "")
		missing.ID = uuid.New()
		assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrRecordNotFound)
	})

	t.Run("delete keeps the order of the rest", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, heroes[1].ID))
		assert.ErrorIs(t, repo.Delete(ctx, heroes[1].ID), repository.ErrRecordNotFound)

		page, err := repo.FindAll(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, heroes[0].ID, page[0].ID)
		assert.Equal(t, heroes[2].ID, page[1].ID)
	})
}

func TestUserRepository_EmailUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	first := &entity.User{Email: "a@x.io", StoredSalt: []byte{1}, StoredHash: []byte{2}}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &entity.User{Email: "a@x.io"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))

	second := &entity.User{Email: "b@x.io"}
	require.NoError(t, repo.Create(ctx, second))

	second.Email = "a@x.io"
	assert.True(t, errors.Is(repo.Update(ctx, second), domainerrors.ErrEmailTaken))

	first.MobileNumber = "555"
	require.NoError(t, repo.Update(ctx, first), "a record never conflicts with itself")

	found, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, "555", found.MobileNumber)

	exists, err := repo.ExistsByEmail(ctx, "b@x.io")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByEmail(ctx, "nobody@x.io")
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestTransactionManager_SharesStores(t *testing.T) {
	users := NewUserRepository()
	heroes := NewAntiHeroRepository()
	tm := NewTransactionManager(users, heroes)

	sentinel := errors.New("boom")
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		assert.Same(t, users, f.UserRepo())
		assert.Same(t, heroes, f.AntiHeroRepo())

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
