package model

import "time"

type Profile struct {
	Id        string    `gorm:"type:varchar(255);primaryKey"`
	Email     string    `gorm:"type:varchar(255)"`
	Username  string    `gorm:"type:varchar(255)"`
	FullName  string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
