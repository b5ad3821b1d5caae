package dto

import "time"

type PreferenceResponse struct {
	UserId         string  `json:"user_id"`
	FontFamily     string  `json:"font_family"`
	TextScale      float64 `json:"text_scale"`
	LetterSpacing  float64 `json:"letter_spacing"`
	LineHeight     float64 `json:"line_height"`
	Theme          string  `json:"theme"`
	SensoryReduced bool    `json:"sensory_reduced"`
	FocusMode      bool    `json:"focus_mode"`
	Version        int64   `json:"version"`
}

// UpdatePreferenceRequest is a partial edit. Numeric values are clamped,
// enum values must be known.
type UpdatePreferenceRequest struct {
	FontFamily     *string  `json:"font_family" validate:"omitempty,oneof=lexend atkinson opendyslexic space-grotesk"`
	TextScale      *float64 `json:"text_scale"`
	LetterSpacing  *float64 `json:"letter_spacing"`
	LineHeight     *float64 `json:"line_height"`
	Theme          *string  `json:"theme" validate:"omitempty,oneof=calm contrast dark"`
	SensoryReduced *bool    `json:"sensory_reduced"`
	FocusMode      *bool    `json:"focus_mode"`
	// Version opts into optimistic concurrency.
	Version *int64 `json:"version"`
	// Wait blocks until the write is stored and reports its result.
	Wait bool `json:"wait"`
}

type UpdatePreferenceResponse struct {
	Preferences  PreferenceResponse `json:"preferences"`
	Persisted    bool               `json:"persisted"`
	PersistError string             `json:"persist_error,omitempty"`
}

type SessionResponse struct {
	Preferences PreferenceResponse    `json:"preferences"`
	ActiveMode  string                `json:"active_mode"`
	Notes       []string              `json:"notes"`
	Timer       PomodoroStateResponse `json:"timer"`
	LoadedAt    time.Time             `json:"loaded_at"`
}

type SetModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=text audio visual gamified math"`
}
