package dto

type PomodoroStateResponse struct {
	Mode             string `json:"mode"`
	SecondsRemaining int    `json:"seconds_remaining"`
	Running          bool   `json:"running"`
	Display          string `json:"display"`
	FocusMinutes     int    `json:"focus_minutes"`
	BreakMinutes     int    `json:"break_minutes"`
}

type PomodoroSummaryResponse struct {
	Timer          PomodoroStateResponse `json:"timer"`
	CompletedToday int64                 `json:"completed_today"`
}

type PomodoroModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=focus break"`
}

// PomodoroCommand is a client frame on the live timer socket.
type PomodoroCommand struct {
	Action string `json:"action" validate:"required,oneof=start pause toggle reset mode state"`
	Mode   string `json:"mode" validate:"omitempty,oneof=focus break"`
}

// PomodoroFrame is a server frame on the live timer socket.
type PomodoroFrame struct {
	Type      string                `json:"type"`
	Timer     PomodoroStateResponse `json:"timer"`
	Completed string                `json:"completed,omitempty"`
	Error     string                `json:"error,omitempty"`
}
