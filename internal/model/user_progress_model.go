package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     string    `gorm:"type:varchar(255);not null;index"`
	ContentId  string    `gorm:"type:varchar(255);not null"`
	FormatUsed string    `gorm:"type:varchar(16);not null"`
	TimeSpent  int       `gorm:"not null;default:0"`
	Completed  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
