package dto

type RoutineStepResponse struct {
	Index   int    `json:"index"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

type RoutineResponse struct {
	Morning []RoutineStepResponse `json:"morning"`
	Evening []RoutineStepResponse `json:"evening"`
}
