package entity

import (
	"time"

	"github.com/google/uuid"
)

// KindUser names the principal collection in not-found errors.
const KindUser = "User"

// User is a principal: an account that can authenticate with email and password.
// StoredSalt and StoredHash are always written together.
type User struct {
	ID           uuid.UUID // Assigned by the store on creation, never reassigned.
	Email        string    // Unique across all users, compared as stored.
	MobileNumber string    // Optional contact field.
	StoredSalt   []byte    // Random per-credential salt.
	StoredHash   []byte    // Digest of salt and password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetCredentials replaces salt and hash as one unit.
func (u *User) SetCredentials(salt, hash []byte) {
	u.StoredSalt = salt
	u.StoredHash = hash
}

// HasCredentials reports whether a password was ever set.
func (u *User) HasCredentials() bool {
	return len(u.StoredHash) > 0 && len(u.StoredSalt) > 0
}

func (u *User) ResourceID() uuid.UUID { return u.ID }

func (u *User) ResourceCreatedAt() time.Time { return u.CreatedAt }

func (u *User) SetIdentity(id uuid.UUID, createdAt time.Time) {
	u.ID = id
	u.CreatedAt = createdAt
}
