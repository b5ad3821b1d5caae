package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type TaskResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Steps     []string   `json:"steps"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
