package model

import (
	"time"

	"github.com/google/uuid"
)

type UserPreference struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FontFamily     string    `gorm:"type:varchar(64);not null;default:'lexend'"`
	TextScale      float64   `gorm:"not null;default:1"`
	LetterSpacing  float64   `gorm:"not null;default:0.5"`
	LineHeight     float64   `gorm:"not null;default:1.6"`
	Theme          string    `gorm:"type:varchar(16);not null;default:'calm'"`
	SensoryReduced bool      `gorm:"not null;default:false"`
	FocusMode      bool      `gorm:"not null;default:false"`
	Version        int64     `gorm:"not null;default:1"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
