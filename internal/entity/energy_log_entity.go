package entity

import (
	"time"

	"github.com/google/uuid"
)

type EnergyLog struct {
	Id          uuid.UUID
	UserId      string
	EnergyLevel int
	Feeling     string
	Notes       *string
	CreatedAt   time.Time
}
