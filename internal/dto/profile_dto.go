package dto

import "time"

type SyncProfileRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Username string `json:"username" validate:"max=255"`
	FullName string `json:"full_name" validate:"max=255"`
}

type ProfileResponse struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	UpdatedAt time.Time `json:"updated_at"`
}
