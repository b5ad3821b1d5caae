package scope

import "gorm.io/gorm"

// OrderByCreatedDesc lists newest rows first; ties break on id so pages are stable.
func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
