// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"strings"

	"roster/config"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	"roster/internal/errors"

	"golang.org/x/crypto/argon2"
)

// Supported digest algorithms.
const (
	AlgorithmSHA512   = "sha512"
	AlgorithmArgon2ID = "argon2id"
)

const (
	minSaltLength     = 16
	defaultSaltLength = 128

	defaultArgonTime    uint32 = 1
	defaultArgonMemory  uint32 = 64 * 1024
	defaultArgonThreads uint8  = 4
	defaultArgonKeyLen  uint32 = 32
)

type digestFunc func(password, salt []byte) []byte

// saltedHasher stores salt and digest separately. The digest is keyed by the
// salt so two users with the same password never share a stored hash.
type saltedHasher struct {
	saltLength int
	digest     digestFunc
}

// NewSaltedHasher builds the hasher selected by auth.hashAlgorithm.
// An unknown algorithm or a short salt is a configuration error and stops startup.
func NewSaltedHasher(cfg *config.Config) (service.PasswordHasher, error) {
	authCfg := &config.AuthConfig{}
	if cfg != nil && cfg.Auth != nil {
		authCfg = cfg.Auth
	}

	saltLength := authCfg.SaltLength
	if saltLength == 0 {
		saltLength = defaultSaltLength
	}
	if saltLength < minSaltLength {
		return nil, domainerrors.NewConfigurationError("auth.saltLength", "salt must be at least 16 bytes")
	}

	var digest digestFunc
	switch strings.ToLower(authCfg.HashAlgorithm) {
	case "", AlgorithmSHA512:
		digest = sha512Digest
	case AlgorithmArgon2ID:
		digest = argon2Digest(authCfg.Argon2)
	default:
		return nil, domainerrors.NewConfigurationError("auth.hashAlgorithm", "unsupported algorithm "+authCfg.HashAlgorithm)
	}

	return &saltedHasher{
		saltLength: saltLength,
		digest:     digest,
	}, nil
}

// GenerateSalt draws saltLength bytes from crypto/rand.
func (h *saltedHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	return salt, nil
}

func (h *saltedHasher) Hash(password string, salt []byte) []byte {
	return h.digest([]byte(password), salt)
}

func (h *saltedHasher) Verify(password string, salt, expectedHash []byte) bool {
	if len(expectedHash) == 0 {
		return false
	}

	return subtle.ConstantTimeCompare(h.Hash(password, salt), expectedHash) == 1
}

// sha512Digest is a single SHA-512 round over salt followed by password.
func sha512Digest(password, salt []byte) []byte {
	h := sha512.New()
	h.Write(salt)
	h.Write(password)

	return h.Sum(nil)
}

func argon2Digest(cfg config.Argon2Config) digestFunc {
	if cfg.Time == 0 {
		cfg.Time = defaultArgonTime
	}
	if cfg.Memory == 0 {
		cfg.Memory = defaultArgonMemory
	}
	if cfg.Threads == 0 {
		cfg.Threads = defaultArgonThreads
	}
	if cfg.KeyLen == 0 {
		cfg.KeyLen = defaultArgonKeyLen
	}

	return func(password, salt []byte) []byte {
		return argon2.IDKey(password, salt, cfg.Time, cfg.Memory, cfg.Threads, cfg.KeyLen)
	}
}
