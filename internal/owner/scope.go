// Package owner scopes queries to the rows of one authenticated user.
package owner

import "gorm.io/gorm"

// Scope restricts a query to rows whose owner_id matches ownerID.
func Scope(ownerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// ScopeTable is Scope with a qualified column, for queries that join or alias tables.
func ScopeTable(table, ownerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".owner_id = ?", ownerID)
	}
}
