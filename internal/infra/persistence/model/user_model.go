package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the store,
// so primary key order follows insertion order.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	MobileNumber string    `gorm:"type:varchar(32)"`
	StoredSalt   []byte    `gorm:"type:bytea;not null"`
	StoredHash   []byte    `gorm:"type:bytea;not null"`
	CreatedAt    time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
