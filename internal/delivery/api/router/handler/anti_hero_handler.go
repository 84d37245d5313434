package handler

import (
	"log/slog"
	"net/http"

	"roster/config"
	"roster/internal/delivery/api/response"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AntiHeroHandlerParams holds dependencies for AntiHeroHandler, injected by Fx.
type AntiHeroHandlerParams struct {
	fx.In

	AntiHeroUC usecase.AntiHeroUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// AntiHeroHandler serves the anti-hero collection.
type AntiHeroHandler struct {
	antiHeroUC usecase.AntiHeroUsecase
	pagination *config.PaginationConfig
	logger     *slog.Logger
}

// NewAntiHeroHandler is the constructor for AntiHeroHandler
func NewAntiHeroHandler(params AntiHeroHandlerParams) *AntiHeroHandler {
	return &AntiHeroHandler{
		antiHeroUC: params.AntiHeroUC,
		pagination: params.Config.Pagination,
		logger:     params.Logger,
	}
}

// GetAntiHero handles GET /api/v1/anti-heroes/:id.
func (h *AntiHeroHandler) GetAntiHero(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	hero, err := h.antiHeroUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAntiHeroResponse(hero))
}

// ListAntiHeroes handles GET /api/v1/anti-heroes?page=&size=.
func (h *AntiHeroHandler) ListAntiHeroes(c echo.Context) error {
	page, err := parsePage(c, h.pagination)
	if err != nil {
		return err
	}

	heroes, err := h.antiHeroUC.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(heroes, toAntiHeroResponse))
}

// CreateAntiHero handles POST /api/v1/anti-heroes.
func (h *AntiHeroHandler) CreateAntiHero(c echo.Context) error {
	var req AntiHeroRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hero, err := h.antiHeroUC.Create(c.Request().Context(), req.toEntity())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toAntiHeroResponse(hero))
}

// UpdateAntiHero handles PUT /api/v1/anti-heroes/:id.
func (h *AntiHeroHandler) UpdateAntiHero(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req AntiHeroRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.ID != id {
		return domainerrors.ErrIDMismatch
	}

	hero, err := h.antiHeroUC.Update(c.Request().Context(), id, req.toEntity())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAntiHeroResponse(hero))
}

// DeleteAntiHero handles DELETE /api/v1/anti-heroes/:id.
func (h *AntiHeroHandler) DeleteAntiHero(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.antiHeroUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}
