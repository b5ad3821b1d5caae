package dto

import (
	"time"

	"github.com/google/uuid"
)

// LogEnergyRequest takes either the raw 0-100 slider or a 1-5 level.
type LogEnergyRequest struct {
	Slider  *int    `json:"slider" validate:"omitempty,min=0,max=100"`
	Level   *int    `json:"level"`
	Feeling string  `json:"feeling" validate:"max=255"`
	Notes   *string `json:"notes"`
}

type EnergyLogResponse struct {
	Id          uuid.UUID `json:"id"`
	EnergyLevel int       `json:"energy_level"`
	Feeling     string    `json:"feeling"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type EnergySuggestionResponse struct {
	Slider  int    `json:"slider"`
	Level   int    `json:"level"`
	Band    string `json:"band"`
	Message string `json:"message"`
}
