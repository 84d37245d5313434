// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new principal.
type RegisterInput struct {
	Email        string
	Password     string
	MobileNumber string
}

// LoginInput defines the data required for a principal to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateCredentialsInput carries the profile fields and an optional new
// password. A blank Password leaves the stored credentials untouched.
type UpdateCredentialsInput struct {
	Email        string
	MobileNumber string
	Password     string
}

// --- Output DTOs ---

// LoginOutput returns the bearer token issued after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresIn time.Duration
	User      *entity.User
}

// AuthUsecase defines the credential operations exposed to the delivery layer.
type AuthUsecase interface {
	// Authenticate fails with ErrInvalidCredentials for an unknown email and
	// for a wrong password alike.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	UpdateCredentials(ctx context.Context, id uuid.UUID, input UpdateCredentialsInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
