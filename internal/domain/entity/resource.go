// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Resource is implemented by every entity served through the generic
// resource service. The identity is assigned once by the store and is
// carried over untouched on update.
type Resource interface {
	ResourceID() uuid.UUID
	ResourceCreatedAt() time.Time
	SetIdentity(id uuid.UUID, createdAt time.Time)
}
