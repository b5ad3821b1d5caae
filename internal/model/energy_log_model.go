package model

import (
	"time"

	"github.com/google/uuid"
)

type EnergyLog struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      string    `gorm:"type:varchar(255);not null;index:idx_energy_logs_user_created,priority:1"`
	EnergyLevel int       `gorm:"type:smallint;not null;check:energy_level BETWEEN 1 AND 5"`
	Feeling     string    `gorm:"type:text;not null;default:''"`
	Notes       *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_energy_logs_user_created,priority:2"`
}

func (EnergyLog) TableName() string {
	return "energy_logs"
}
