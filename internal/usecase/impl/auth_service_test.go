package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/infra/persistence/memory"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures wires the service to the in-memory store with real
// hashing and token signing.
type authServiceFixtures struct {
	service usecase.AuthUsecase
	users   repository.UserRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	users := memory.NewUserRepository()
	txManager := memory.NewTransactionManager(users, memory.NewAntiHeroRepository())

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     users,
		Hasher:       newTestHasher(t),
		TokenService: newTestTokenService(t),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{service: svc, users: users}
}

func TestAuthService_RegisterThenAuthenticate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:        "a@x.com",
		Password:     "secret",
		MobileNumber: "555-0100",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, registered.ID)
	assert.True(t, registered.HasCredentials())

	user, err := fx.service.Authenticate(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "555-0100", user.MobileNumber)
}

func TestAuthService_AuthenticateFailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	_, unknownErr := fx.service.Authenticate(ctx, "nobody@x.com", "secret")
	_, wrongErr := fx.service.Authenticate(ctx, "a@x.com", "not-the-password")

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_RegisterRejectsBlankPassword(t *testing.T) {
	fx := createTestAuthService(t)

	for _, password := range []string{"", "   "} {
		_, err := fx.service.Register(context.Background(), usecase.RegisterInput{Email: "a@x.com", Password: password})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput), "password %q", password)
	}

	exists, err := fx.users.ExistsByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAuthService_RegisterTakenEmailKeepsFirstHash(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	first, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "first"})
	require.NoError(t, err)

	stored, err := fx.users.FindByID(ctx, first.ID)
	require.NoError(t, err)
	originalSalt := bytes.Clone(stored.StoredSalt)
	originalHash := bytes.Clone(stored.StoredHash)

	_, err = fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "second"})
	require.True(t, errors.Is(err, domainerrors.ErrEmailTaken))

	stored, err = fx.users.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, originalSalt, stored.StoredSalt)
	assert.Equal(t, originalHash, stored.StoredHash)

	_, err = fx.service.Authenticate(ctx, "a@x.com", "first")
	require.NoError(t, err)
}

func TestAuthService_UpdateCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("blank password keeps salt and hash", func(t *testing.T) {
		fx := createTestAuthService(t)
		user, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "pw"})
		require.NoError(t, err)
		before, err := fx.users.FindByID(ctx, user.ID)
		require.NoError(t, err)

		updated, err := fx.service.UpdateCredentials(ctx, user.ID, usecase.UpdateCredentialsInput{
			Email:        "a@x.com",
			MobileNumber: "555-0199",
		})
		require.NoError(t, err)
		assert.Equal(t, "555-0199", updated.MobileNumber)

		after, err := fx.users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, before.StoredSalt, after.StoredSalt)
		assert.Equal(t, before.StoredHash, after.StoredHash)
		assert.Equal(t, "555-0199", after.MobileNumber)
		assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	})

	t.Run("new password replaces salt and hash", func(t *testing.T) {
		fx := createTestAuthService(t)
		user, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "pw"})
		require.NoError(t, err)
		before, err := fx.users.FindByID(ctx, user.ID)
		require.NoError(t, err)

		_, err = fx.service.UpdateCredentials(ctx, user.ID, usecase.UpdateCredentialsInput{
			Email:    "b@x.com",
			Password: "newpw",
		})
		require.NoError(t, err)

		after, err := fx.users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NotEqual(t, before.StoredSalt, after.StoredSalt)
		assert.NotEqual(t, before.StoredHash, after.StoredHash)
		assert.Equal(t, "b@x.com", after.Email)

		_, err = fx.service.Authenticate(ctx, "b@x.com", "newpw")
		require.NoError(t, err)
		_, err = fx.service.Authenticate(ctx, "b@x.com", "pw")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		fx := createTestAuthService(t)
		id := uuid.New()

		_, err := fx.service.UpdateCredentials(ctx, id, usecase.UpdateCredentialsInput{Email: "a@x.com"})
		requireNotFound(t, err, entity.KindUser, id)
	})

	t.Run("email collision is reported", func(t *testing.T) {
		fx := createTestAuthService(t)
		_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "pw"})
		require.NoError(t, err)
		other, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "b@x.com", Password: "pw"})
		require.NoError(t, err)

		_, err = fx.service.UpdateCredentials(ctx, other.ID, usecase.UpdateCredentialsInput{Email: "a@x.com"})
		assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	})
}

func TestAuthService_LoginIssuesTokenForEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, output.Token)
	assert.Equal(t, time.Hour, output.ExpiresIn, "unset TTL falls back to one hour")

	subject, err := newTestTokenService(t).Validate(output.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)

	_, err = fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// mockAuthFixtures is used for failure paths the in-memory store cannot produce.
type mockAuthFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
}

func createMockAuthService(t *testing.T) mockAuthFixtures {
	fx := mockAuthFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokens,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx mockAuthFixtures) runTransaction(t *testing.T, ctx context.Context, txUserRepo repository.UserRepository) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(txUserRepo)

			return fn(factory)
		})
}

func TestAuthService_RegisterSaltFailure(t *testing.T) {
	fx := createMockAuthService(t)
	ctx := context.Background()

	fx.runTransaction(t, ctx, fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "a@x.com").Return(false, nil)
	fx.hasher.EXPECT().GenerateSalt().Return(nil, errors.New("entropy exhausted"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterLosesUniqueRace(t *testing.T) {
	fx := createMockAuthService(t)
	ctx := context.Background()

	fx.runTransaction(t, ctx, fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "a@x.com").Return(false, nil)
	fx.hasher.EXPECT().GenerateSalt().Return([]byte("0123456789abcdef"), nil)
	fx.hasher.EXPECT().Hash("pw", []byte("0123456789abcdef")).Return([]byte("digest"))
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailTaken.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAuthService_RegisterPersistsSaltAndHashTogether(t *testing.T) {
	fx := createMockAuthService(t)
	ctx := context.Background()
	salt := []byte("0123456789abcdef")

	fx.runTransaction(t, ctx, fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "a@x.com").Return(false, nil)
	fx.hasher.EXPECT().GenerateSalt().Return(salt, nil)
	fx.hasher.EXPECT().Hash("pw", salt).Return([]byte("digest"))
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, salt, user.StoredSalt)
			assert.Equal(t, []byte("digest"), user.StoredHash)
			assert.Equal(t, "555", user.MobileNumber)
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@x.com", Password: "pw", MobileNumber: "555"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestAuthService_AuthenticateStoreError(t *testing.T) {
	fx := createMockAuthService(t)
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, storeErr)

	_, err := fx.service.Authenticate(ctx, "a@x.com", "pw")
	require.ErrorIs(t, err, storeErr)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_AuthenticateUserWithoutCredentials(t *testing.T) {
	fx := createMockAuthService(t)
	ctx := context.Background()
	decoySalt, decoyHash := []byte("decoy-salt-bytes"), []byte("decoy-hash")

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{Email: "a@x.com"}, nil)
	fx.hasher.EXPECT().GenerateSalt().Return(decoySalt, nil).Once()
	fx.hasher.EXPECT().Hash("", decoySalt).Return(decoyHash).Once()
	fx.hasher.EXPECT().Verify("", decoySalt, decoyHash).Return(true).Once()

	_, err := fx.service.Authenticate(ctx, "a@x.com", "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials, "a decoy match never authenticates")
}

func TestAuthService_AuthenticateUnknownEmailRunsDigest(t *testing.T) {
	fx := createMockAuthService(t)
	ctx := context.Background()
	decoySalt, decoyHash := []byte("decoy-salt-bytes"), []byte("decoy-hash")

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrRecordNotFound).Times(2)
	fx.hasher.EXPECT().GenerateSalt().Return(decoySalt, nil).Once()
	fx.hasher.EXPECT().Hash("", decoySalt).Return(decoyHash).Once()
	fx.hasher.EXPECT().Verify("pw", decoySalt, decoyHash).Return(false).Times(2)

	for range 2 {
		_, err := fx.service.Authenticate(ctx, "nobody@x.com", "pw")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestAuthService_LoginTokenFailure(t *testing.T) {
	fx := createMockAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@x.com", StoredSalt: []byte("s"), StoredHash: []byte("h")}

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	fx.hasher.EXPECT().Verify("pw", user.StoredSalt, user.StoredHash).Return(true)
	fx.tokens.EXPECT().Issue("a@x.com").Return("", errors.New("signing failed"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}
