package service

import "time"

// TokenService mints and validates stateless bearer tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after TTL.
	Issue(subject string) (string, error)

	// Validate returns the subject of a valid token. Failures are
	// *domainerrors.TokenError with kind malformed, signature invalid or expired.
	Validate(token string) (string, error)

	// TTL returns the configured lifetime of issued tokens.
	TTL() time.Duration
}
