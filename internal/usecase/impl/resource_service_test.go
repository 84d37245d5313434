package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/infra/persistence/memory"
	mockRepo "roster/internal/mocks/repository"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemoryAntiHeroService() usecase.AntiHeroUsecase {
	return NewAntiHeroService(memory.NewAntiHeroRepository(), newDiscardLogger())
}

func requireNotFound(t *testing.T, err error, kind string, id uuid.UUID) {
	t.Helper()

	var notFound *domainerrors.NotFoundError
	require.True(t, errors.As(err, &notFound), "expected NotFoundError, got %v", err)
	assert.Equal(t, kind, notFound.Kind)
	assert.Equal(t, id.String(), notFound.ID)
	assert.Contains(t, err.Error(), kind)
	assert.Contains(t, err.Error(), id.String())
}

func TestResourceService_CreateThenFind(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryAntiHeroService()

	created, err := svc.Create(ctx, entity.NewAntiHero("Deadpool", "Wilson", "Marvel", "Merc"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Deadpool", found.FirstName)
}

func TestResourceService_DeleteThenFind(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryAntiHeroService()

	created, err := svc.Create(ctx, entity.NewAntiHero("Venom", "", "", ""))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.FindByID(ctx, created.ID)
	requireNotFound(t, err, entity.KindAntiHero, created.ID)

	err = svc.Delete(ctx, created.ID)
	requireNotFound(t, err, entity.KindAntiHero, created.ID)
}

func TestResourceService_ListPagesInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryAntiHeroService()

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := svc.Create(ctx, entity.NewAntiHero(name, "", "", ""))
		require.NoError(t, err)
	}

	tests := []struct {
		name string
		page usecase.Page
		want []string
	}{
		{name: "size 2 page 1", page: usecase.Page{Size: 2, Number: 1}, want: []string{"C", "D"}},
		{name: "size 2 page 2", page: usecase.Page{Size: 2, Number: 2}, want: []string{"E"}},
		{name: "size 5 page 0", page: usecase.Page{Size: 5, Number: 0}, want: []string{"A", "B", "C", "D", "E"}},
		{name: "beyond the end", page: usecase.Page{Size: 3, Number: 4}, want: []string{}},
		{name: "offset past int range", page: usecase.Page{Size: 3, Number: 6148914691236517206}, want: []string{}},
		{name: "max page number", page: usecase.Page{Size: 2, Number: math.MaxInt}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heroes, err := svc.List(ctx, tt.page)
			require.NoError(t, err)

			names := make([]string, 0, len(heroes))
			for _, hero := range heroes {
				names = append(names, hero.FirstName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestResourceService_ListHugePageSaturatesOffset(t *testing.T) {
	store := mockRepo.NewMockAntiHeroRepository(t)
	store.EXPECT().FindAll(mock.Anything, math.MaxInt, 100).Return([]*entity.AntiHero{}, nil)

	svc := NewAntiHeroService(store, newDiscardLogger())

	heroes, err := svc.List(context.Background(), usecase.Page{Size: 100, Number: math.MaxInt / 50})
	require.NoError(t, err)
	assert.Empty(t, heroes)
}

func TestResourceService_ListRejectsInvalidPage(t *testing.T) {
	svc := newMemoryAntiHeroService()

	for _, page := range []usecase.Page{{Size: 0, Number: 0}, {Size: 10, Number: -1}} {
		_, err := svc.List(context.Background(), page)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput), "page %+v", page)
	}
}

func TestResourceService_UpdateKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryAntiHeroService()

	created, err := svc.Create(ctx, entity.NewAntiHero("Catwoman", "Kyle", "DC", ""))
	require.NoError(t, err)

	replacement := &entity.AntiHero{
		ID:        uuid.New(),
		FirstName: "Selina",
		LastName:  "Kyle",
		House:     "DC",
		KnownAs:   "Catwoman",
		CreatedAt: created.CreatedAt.Add(24 * time.Hour),
	}

	updated, err := svc.Update(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Selina", found.FirstName)
	assert.Equal(t, "Catwoman", found.KnownAs)
}

func TestResourceService_UpdateMissingDoesNotTouchStore(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockAntiHeroRepository(t)
	svc := NewAntiHeroService(repo, newDiscardLogger())

	id := uuid.New()
	repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecordNotFound)

	_, err := svc.Update(ctx, id, entity.NewAntiHero("Ghost", "", "", ""))
	requireNotFound(t, err, entity.KindAntiHero, id)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestResourceService_DeleteMissingDoesNotTouchStore(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockUserRepository(t)
	svc := NewUserResourceService(repo, newDiscardLogger())

	id := uuid.New()
	repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecordNotFound)

	err := svc.Delete(ctx, id)
	requireNotFound(t, err, entity.KindUser, id)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestResourceService_StoreErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	t.Run("find propagates unexpected errors", func(t *testing.T) {
		repo := mockRepo.NewMockAntiHeroRepository(t)
		svc := NewAntiHeroService(repo, newDiscardLogger())

		id := uuid.New()
		repo.EXPECT().FindByID(ctx, id).Return(nil, storeErr)

		_, err := svc.FindByID(ctx, id)
		require.ErrorIs(t, err, storeErr)
		assert.False(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("row vanishing between lookup and update is not found", func(t *testing.T) {
		repo := mockRepo.NewMockAntiHeroRepository(t)
		svc := NewAntiHeroService(repo, newDiscardLogger())

		existing := entity.NewAntiHero("Loki", "", "Asgard", "")
		existing.ID = uuid.New()
		repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		repo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.AntiHero")).Return(repository.ErrRecordNotFound)

		_, err := svc.Update(ctx, existing.ID, entity.NewAntiHero("Loki", "Laufeyson", "Asgard", ""))
		requireNotFound(t, err, entity.KindAntiHero, existing.ID)
	})

	t.Run("list propagates store errors", func(t *testing.T) {
		repo := mockRepo.NewMockAntiHeroRepository(t)
		svc := NewAntiHeroService(repo, newDiscardLogger())

		repo.EXPECT().FindAll(ctx, 20, 10).Return(nil, storeErr)

		_, err := svc.List(ctx, usecase.Page{Size: 10, Number: 2})
		require.ErrorIs(t, err, storeErr)
	})
}
