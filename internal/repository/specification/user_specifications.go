package specification

import (
	"time"

	"neurolearn-be/internal/repository/scope"

	"gorm.io/gorm"
)

// UserOwnedBy scopes rows to one identity-provider user id.
type UserOwnedBy struct {
	UserID string
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// CreatedSince keeps rows created at or after Since.
type CreatedSince struct {
	Since time.Time
}

func (s CreatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Since)
}

// NewestFirst orders by creation time, newest first, with a stable tiebreak.
type NewestFirst struct{}

func (NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.OrderByCreatedDesc)
}
