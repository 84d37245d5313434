package memory

import (
	"context"
	"sync"

	"roster/internal/domain/repository"
)

// transactionManager serializes Execute calls over the shared stores.
// Writes made before fn fails are not rolled back.
type transactionManager struct {
	mu       sync.Mutex
	users    repository.UserRepository
	antiHero repository.AntiHeroRepository
}

// NewTransactionManager binds the manager to the process-wide stores.
func NewTransactionManager(users repository.UserRepository, antiHeroes repository.AntiHeroRepository) repository.TransactionManager {
	return &transactionManager{users: users, antiHero: antiHeroes}
}

func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(tm)
}

func (tm *transactionManager) UserRepo() repository.UserRepository {
	return tm.users
}

func (tm *transactionManager) AntiHeroRepo() repository.AntiHeroRepository {
	return tm.antiHero
}
