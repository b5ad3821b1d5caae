package entity

import (
	"time"

	"github.com/google/uuid"
)

type PomodoroSession struct {
	Id        uuid.UUID
	UserId    string
	Duration  int // minutes
	Mode      string
	Completed bool
	CreatedAt time.Time
}
