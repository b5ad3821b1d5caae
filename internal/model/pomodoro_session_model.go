package model

import (
	"time"

	"github.com/google/uuid"
)

type PomodoroSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    string    `gorm:"type:varchar(255);not null;index"`
	Duration  int       `gorm:"not null"`
	Mode      string    `gorm:"type:varchar(16);not null;default:'focus'"`
	Completed bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (PomodoroSession) TableName() string {
	return "pomodoro_sessions"
}
