package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "roster/internal/delivery/context"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	"roster/internal/errors"
	"roster/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware rejects requests without a valid bearer token before any
// handler runs.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	metrics  *metrics.Metrics
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, metrics: m}
}

// Authenticate validates the bearer token and stores its subject on the
// request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			m.metrics.RecordTokenRejection("missing")

			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			m.metrics.RecordTokenRejection("scheme")

			return domainerrors.ErrUnauthenticated.WrapMessage("authorization must be a bearer token")
		}

		subject, err := m.tokenSvc.Validate(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			var tokenErr *domainerrors.TokenError
			if errors.As(err, &tokenErr) {
				m.metrics.RecordTokenRejection(tokenErr.Failure.String())

				return err
			}
			m.metrics.RecordTokenRejection(domainerrors.TokenMalformed.String())

			return domainerrors.NewTokenError(domainerrors.TokenMalformed, err)
		}

		deliverycontext.SetSubject(c, subject)
		ctx := deliverycontext.WithSubject(c.Request().Context(), subject)
		if reqLogger := deliverycontext.GetLogger(ctx); reqLogger != nil {
			ctx = deliverycontext.WithLogger(ctx, reqLogger.With(slog.String("subject", subject)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetSubject returns the subject placed by Authenticate.
func GetSubject(c echo.Context) (string, bool) {
	return deliverycontext.GetSubject(c)
}
