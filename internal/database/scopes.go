package database

import (
	"gorm.io/gorm"

	"github.com/haojie/dochub-api/internal/utils"
)

// Paginate applies offset pagination to a GORM query.
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.PageSize)
	}
}

// NotDeleted filters out soft-deleted rows.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
