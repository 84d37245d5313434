package model

import (
	"time"

	"github.com/google/uuid"
)

// AntiHeroModel mirrors the 'anti_heroes' table.
type AntiHeroModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100)"`
	House     string    `gorm:"type:varchar(100)"`
	KnownAs   string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AntiHeroModel) TableName() string {
	return "anti_heroes"
}
