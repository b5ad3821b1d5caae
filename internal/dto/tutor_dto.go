package dto

type TutorAskRequest struct {
	Prompt string `json:"prompt" validate:"required,max=2000"`
}

type TutorHelperResponse struct {
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Snippet string `json:"snippet"`
}

type TutorAnswerResponse struct {
	Prompt  string                `json:"prompt"`
	Answer  string                `json:"answer"`
	Helpers []TutorHelperResponse `json:"helpers"`
}
