// Package model holds the GORM persistence models.
package model

// All lists every model migrated at startup.
func All() []any {
	return []any{
		&UserModel{},
		&AntiHeroModel{},
	}
}
