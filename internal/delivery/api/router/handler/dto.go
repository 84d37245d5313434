package handler

import (
	"time"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// createdAtLayout renders creation timestamps as dd-MM-yyyy HH:mm:ss zone.
const createdAtLayout = "02-01-2006 15:04:05 MST"

// UserResponse never carries salt or hash.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// UpdateUserRequest replaces the profile. A blank password keeps the current one.
type UpdateUserRequest struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email" validate:"required,email,max=255"`
	MobileNumber string    `json:"mobileNumber" validate:"omitempty,max=32"`
	Password     string    `json:"password"`
}

// AntiHeroRequest is the create and update body. ID is ignored on create.
type AntiHeroRequest struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName" validate:"required,max=100"`
	LastName  string    `json:"lastName" validate:"max=100"`
	House     string    `json:"house" validate:"max=100"`
	KnownAs   string    `json:"knownAs" validate:"max=100"`
}

func (r AntiHeroRequest) toEntity() *entity.AntiHero {
	return entity.NewAntiHero(r.FirstName, r.LastName, r.House, r.KnownAs)
}

// AntiHeroResponse is the wire form of an anti-hero.
type AntiHeroResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	House     string    `json:"house"`
	KnownAs   string    `json:"knownAs"`
	CreatedAt string    `json:"createdAt"`
}

func toAntiHeroResponse(hero *entity.AntiHero) AntiHeroResponse {
	return AntiHeroResponse{
		ID:        hero.ID,
		FirstName: hero.FirstName,
		LastName:  hero.LastName,
		House:     hero.House,
		KnownAs:   hero.KnownAs,
		CreatedAt: hero.CreatedAt.Format(createdAtLayout),
	}
}

func mapSlice[T, R any](items []T, convert func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}

	return out
}
