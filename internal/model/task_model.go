package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Task struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    string         `gorm:"type:varchar(255);not null;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Steps     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Status    string         `gorm:"type:varchar(16);not null;default:'not-started'"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}
