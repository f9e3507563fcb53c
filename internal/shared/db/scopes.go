// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"

	"campus/internal/shared/query"
)

// Paginate applies LIMIT/OFFSET from a page filter.
//
//	tx.Scopes(db.Paginate(filter.PageFilter)).Find(&rows)
func Paginate(f query.PageFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(f.Offset()).Limit(f.Limit())
	}
}

// OrderBy applies a whitelisted sort column, or fallback.
func OrderBy(f query.SortFilter, allowed map[string]bool, fallback string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(f.OrderClause(allowed, fallback))
	}
}

// WhereIf adds the condition only when apply is true. Used for optional filters.
func WhereIf(apply bool, cond string, args ...interface{}) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !apply {
			return db
		}
		return db.Where(cond, args...)
	}
}
