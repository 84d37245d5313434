package entity

import (
	"time"

	"github.com/google/uuid"
)

// KindAntiHero names the anti-hero collection in not-found errors.
const KindAntiHero = "Anti-hero"

// AntiHero is a catalog entry.
type AntiHero struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	House     string
	KnownAs   string
	CreatedAt time.Time // Set when the value is constructed.
}

// NewAntiHero builds an anti-hero stamped with the current time.
func NewAntiHero(firstName, lastName, house, knownAs string) *AntiHero {
	return &AntiHero{
		FirstName: firstName,
		LastName:  lastName,
		House:     house,
		KnownAs:   knownAs,
		CreatedAt: time.Now().UTC(),
	}
}

func (a *AntiHero) ResourceID() uuid.UUID { return a.ID }

func (a *AntiHero) ResourceCreatedAt() time.Time { return a.CreatedAt }

func (a *AntiHero) SetIdentity(id uuid.UUID, createdAt time.Time) {
	a.ID = id
	a.CreatedAt = createdAt
}
