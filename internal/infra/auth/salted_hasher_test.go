package auth

import (
	"crypto/sha512"
	"testing"

	"roster/config"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher(t *testing.T, algorithm string) *saltedHasher {
	t.Helper()

	hasher, err := NewSaltedHasher(&config.Config{
		Auth: &config.AuthConfig{
			HashAlgorithm: algorithm,
			SaltLength:    32,
			Argon2:        config.Argon2Config{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32},
		},
	})
	require.NoError(t, err)

	return hasher.(*saltedHasher)
}

func TestSaltedHasher_GenerateSalt(t *testing.T) {
	hasher := newTestHasher(t, AlgorithmSHA512)

	s1, err := hasher.GenerateSalt()
	require.NoError(t, err)
	s2, err := hasher.GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, 32)
	assert.Len(t, s2, 32)
	assert.NotEqual(t, s1, s2)
}

func TestSaltedHasher_DefaultSaltLength(t *testing.T) {
	hasher, err := NewSaltedHasher(&config.Config{})
	require.NoError(t, err)

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, 128)
}

func TestSaltedHasher_SHA512MatchesSaltThenPassword(t *testing.T) {
	hasher := newTestHasher(t, AlgorithmSHA512)
	salt := []byte("0123456789abcdef")

	h := sha512.New()
	h.Write(salt)
	h.Write([]byte("hunter2"))

	assert.Equal(t, h.Sum(nil), hasher.Hash("hunter2", salt))
	assert.Len(t, hasher.Hash("hunter2", salt), sha512.Size)
}

func TestSaltedHasher_Properties(t *testing.T) {
	for _, algorithm := range []string{AlgorithmSHA512, AlgorithmArgon2ID} {
		t.Run(algorithm, func(t *testing.T) {
			hasher := newTestHasher(t, algorithm)

			s1, err := hasher.GenerateSalt()
			require.NoError(t, err)
			s2, err := hasher.GenerateSalt()
			require.NoError(t, err)

			password := "StrongPass123!"

			// deterministic for identical inputs
			assert.Equal(t, hasher.Hash(password, s1), hasher.Hash(password, s1))

			// different salts, different digests
			assert.NotEqual(t, hasher.Hash(password, s1), hasher.Hash(password, s2))

			stored := hasher.Hash(password, s1)
			assert.True(t, hasher.Verify(password, s1, stored))
			assert.False(t, hasher.Verify("StrongPass123?", s1, stored))
			assert.False(t, hasher.Verify("", s1, stored))
			assert.False(t, hasher.Verify(password, s2, stored))
			assert.False(t, hasher.Verify(password, s1, nil))
		})
	}
}

func TestSaltedHasher_EmptyPasswordIsHashed(t *testing.T) {
	hasher := newTestHasher(t, AlgorithmSHA512)
	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	stored := hasher.Hash("", salt)
	assert.NotEmpty(t, stored)
	assert.True(t, hasher.Verify("", salt, stored))
}

func TestNewSaltedHasher_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		auth    *config.AuthConfig
		setting string
	}{
		{name: "unknown algorithm", auth: &config.AuthConfig{HashAlgorithm: "md5"}, setting: "auth.hashAlgorithm"},
		{name: "short salt", auth: &config.AuthConfig{SaltLength: 8}, setting: "auth.saltLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, err := NewSaltedHasher(&config.Config{Auth: tt.auth})
			require.Error(t, err)
			assert.Nil(t, hasher)

			var cfgErr *domainerrors.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.setting, cfgErr.Setting)
		})
	}
}
