// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns a password and a per-user salt into a non-reversible digest.
// It has no opinion on password policy.
type PasswordHasher interface {
	// GenerateSalt returns a fresh, cryptographically random salt of fixed length.
	GenerateSalt() ([]byte, error)

	// Hash is deterministic for identical password and salt.
	Hash(password string, salt []byte) []byte

	// Verify recomputes the digest and compares it in constant time.
	Verify(password string, salt, expectedHash []byte) bool
}
