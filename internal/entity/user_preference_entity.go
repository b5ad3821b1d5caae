package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserPreference is the persisted row shape of a learner's display settings.
type UserPreference struct {
	Id             uuid.UUID
	UserId         string
	FontFamily     string
	TextScale      float64
	LetterSpacing  float64
	LineHeight     float64
	Theme          string
	SensoryReduced bool
	FocusMode      bool
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
