package handler

import (
	"log/slog"
	"net/http"

	"roster/config"
	"roster/internal/delivery/api/response"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserResourceUsecase
	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// UserHandler serves the principal collection. Creation goes through
// registration, and updates go through the credential flow so salt and hash
// stay consistent.
type UserHandler struct {
	userUC     usecase.UserResourceUsecase
	authUC     usecase.AuthUsecase
	pagination *config.PaginationConfig
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:     params.UserUC,
		authUC:     params.AuthUC,
		pagination: params.Config.Pagination,
		logger:     params.Logger,
	}
}

// GetUser handles GET /api/v1/users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ListUsers handles GET /api/v1/users?page=&size=.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := parsePage(c, h.pagination)
	if err != nil {
		return err
	}

	users, err := h.userUC.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(users, toUserResponse))
}

// UpdateUser handles PUT /api/v1/users/:id.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.ID != id {
		return domainerrors.ErrIDMismatch
	}

	user, err := h.authUC.UpdateCredentials(c.Request().Context(), id, usecase.UpdateCredentialsInput{
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WrapMessage("invalid id")
	}

	return id, nil
}
