// Package handler contains the HTTP handlers of the API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"roster/internal/delivery/api/response"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"
	"roster/internal/infra/metrics"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// AuthHandler serves login and registration.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// AuthenticationRequest is the login body.
type AuthenticationRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthenticationResponse carries the issued bearer token.
type AuthenticationResponse struct {
	Token string `json:"token"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`
}

// RegisterRequest is the registration body.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"omitempty,max=32"`
}

// Authenticate handles POST /authenticate.
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req AuthenticationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			h.metrics.RecordLogin(metrics.LoginRejected)
		} else {
			h.metrics.RecordLogin(metrics.LoginFailed)
		}

		return err
	}

	h.metrics.RecordLogin(metrics.LoginSucceeded)

	return response.Success(c, http.StatusCreated, AuthenticationResponse{
		Token:     output.Token,
		ExpiresIn: int64(output.ExpiresIn / time.Second),
	})
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}
