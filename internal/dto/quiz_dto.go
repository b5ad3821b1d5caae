package dto

type QuizOption struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Support string `json:"support"`
}

type QuizQuestion struct {
	Key         string       `json:"key"`
	Prompt      string       `json:"prompt"`
	Description string       `json:"description"`
	Options     []QuizOption `json:"options"`
}

type QuizStateResponse struct {
	Step      int               `json:"step"`
	Total     int               `json:"total"`
	Complete  bool              `json:"complete"`
	Progress  float64           `json:"progress"`
	Current   QuizQuestion      `json:"current"`
	Responses map[string]string `json:"responses"`
	Notes     []string          `json:"notes"`
}

type QuizAnswerRequest struct {
	Key   string `json:"key" validate:"required,oneof=sensory attention intake"`
	Value string `json:"value" validate:"required"`
}

type QuizAdvanceResponse struct {
	Quiz     QuizStateResponse `json:"quiz"`
	Advanced bool              `json:"advanced"`
	Session  *SessionResponse  `json:"session,omitempty"`
}
