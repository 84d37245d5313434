package impl

import (
	"io"
	"log/slog"
	"testing"

	"roster/config"
	"roster/internal/domain/service"
	"roster/internal/infra/auth"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			HashAlgorithm: "sha512",
			SaltLength:    32,
		},
	}
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

func newTestHasher(t *testing.T) service.PasswordHasher {
	t.Helper()

	hasher, err := auth.NewSaltedHasher(newTestConfig())
	require.NoError(t, err)

	return hasher
}

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	tokens, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	return tokens
}
