package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	Id         uuid.UUID
	UserId     string
	ContentId  string
	FormatUsed string
	TimeSpent  int // seconds
	Completed  bool
	CreatedAt  time.Time
}
