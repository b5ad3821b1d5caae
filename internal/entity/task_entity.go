package entity

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id        uuid.UUID
	UserId    string
	Title     string
	Steps     []string
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
