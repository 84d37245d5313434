package handler

import (
	"strconv"

	"roster/config"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
)

// parsePage reads ?page=&size=. Missing values fall back to page 0 and the
// configured default size; sizes above the configured maximum are clamped.
func parsePage(c echo.Context, cfg *config.PaginationConfig) (usecase.Page, error) {
	page := usecase.Page{Size: cfg.DefaultSize}

	if raw := c.QueryParam("page"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil || number < 0 {
			return usecase.Page{}, domainerrors.ErrInvalidInput.WrapMessage("page must be a non-negative integer")
		}
		page.Number = number
	}

	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return usecase.Page{}, domainerrors.ErrInvalidInput.WrapMessage("size must be a positive integer")
		}
		page.Size = size
	}

	page.Size = min(page.Size, cfg.MaxSize)

	return page, nil
}

// bindAndValidate binds the request body and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("malformed request body")
	}

	return c.Validate(req)
}
