package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/errors"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time

	// decoy credentials are verified when no stored ones exist, so unknown
	// emails cost the same digest work as wrong passwords.
	decoyOnce sync.Once
	decoySalt []byte
	decoyHash []byte
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the password against the stored salt and hash. The
// error never reveals whether the email exists.
func (srv *authService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrRecordNotFound) {
		srv.verifyDecoy(password)
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.HasCredentials() {
		srv.verifyDecoy(password)
		srv.log(ctx).Warn("Login attempt for user without credentials", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !srv.hasher.Verify(password, user.StoredSalt, user.StoredHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// Register creates a principal with a fresh salt and hash. The existence
// check is a fast path; the store's unique email constraint is authoritative.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("password must not be blank")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("email must not be blank")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		taken, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if taken {
			return domainerrors.ErrEmailTaken
		}

		salt, hash, err := srv.newCredentials(input.Password)
		if err != nil {
			return err
		}

		now := srv.now().UTC()
		user := &entity.User{
			Email:        input.Email,
			MobileNumber: input.MobileNumber,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		user.SetCredentials(salt, hash)

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registered = user

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			srv.log(ctx).Warn("Registration with taken email", slog.String("email", input.Email))
		} else {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))

	return registered, nil
}

// UpdateCredentials always applies the profile fields. Salt and hash are
// regenerated together only when a non-blank password is supplied.
func (srv *authService) UpdateCredentials(ctx context.Context, id uuid.UUID, input usecase.UpdateCredentialsInput) (*entity.User, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("email must not be blank")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domainerrors.NewNotFoundError(entity.KindUser, id)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		user.Email = input.Email
		user.MobileNumber = input.MobileNumber

		if strings.TrimSpace(input.Password) != "" {
			salt, hash, err := srv.newCredentials(input.Password)
			if err != nil {
				return err
			}
			user.SetCredentials(salt, hash)
		}

		user.UpdatedAt = srv.now().UTC()

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.NewNotFoundError(entity.KindUser, id)
			}

			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Login authenticates and issues a token whose subject is the user's email.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.LoginOutput{Token: token, ExpiresIn: srv.tokenService.TTL(), User: user}, nil
}

func (srv *authService) verifyDecoy(password string) {
	srv.decoyOnce.Do(func() {
		salt, err := srv.hasher.GenerateSalt()
		if err != nil {
			srv.logger.Error("Failed to generate decoy salt", slog.Any("error", err))
		}
		srv.decoySalt = salt
		srv.decoyHash = srv.hasher.Hash("", salt)
	})

	srv.hasher.Verify(password, srv.decoySalt, srv.decoyHash)
}

func (srv *authService) newCredentials(password string) (salt, hash []byte, err error) {
	salt, err = srv.hasher.GenerateSalt()
	if err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return salt, srv.hasher.Hash(password, salt), nil
}
