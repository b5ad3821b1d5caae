package dto

import (
	"time"

	"github.com/google/uuid"
)

type TrackProgressRequest struct {
	ContentId  string `json:"content_id" validate:"required"`
	FormatUsed string `json:"format_used" validate:"required,oneof=text audio visual gamified math"`
	TimeSpent  int    `json:"time_spent" validate:"min=0"`
	Completed  bool   `json:"completed"`
}

type ProgressResponse struct {
	Id         uuid.UUID `json:"id"`
	ContentId  string    `json:"content_id"`
	FormatUsed string    `json:"format_used"`
	TimeSpent  int       `json:"time_spent"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
}
