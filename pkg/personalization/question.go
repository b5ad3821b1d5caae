// Package personalization turns onboarding quiz answers into preference updates.
package personalization

type QuestionKey string

const (
	QuestionSensory   QuestionKey = "sensory"
	QuestionAttention QuestionKey = "attention"
	QuestionIntake    QuestionKey = "intake"
)

// LearningMode is the content-display mode of the lesson canvas.
type LearningMode string

const (
	ModeText     LearningMode = "text"
	ModeAudio    LearningMode = "audio"
	ModeVisual   LearningMode = "visual"
	ModeGamified LearningMode = "gamified"
	ModeMath     LearningMode = "math"
)

var LearningModes = []LearningMode{ModeText, ModeAudio, ModeVisual, ModeGamified, ModeMath}

func (m LearningMode) Valid() bool {
	for _, lm := range LearningModes {
		if lm == m {
			return true
		}
	}
	return false
}

type Option struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Support string `json:"support"`
}

type Question struct {
	Key         QuestionKey `json:"id"`
	Prompt      string      `json:"prompt"`
	Description string      `json:"description"`
	Options     []Option    `json:"options"`
}

// Option values understood by the resolver.
const (
	SensoryLowStim      = "lowStim"
	SensoryBalanced     = "balanced"
	SensoryHighContrast = "highContrast"

	AttentionMicro  = "micro"
	AttentionSteady = "steady"
	AttentionDeep   = "deep"

	IntakeVisual = "visual"
	IntakeAudio  = "audio"
	IntakeText   = "text"
)

// OnboardingQuestions returns the fixed, ordered onboarding quiz.
func OnboardingQuestions() []Question {
	return []Question{
		{
			Key:         QuestionSensory,
			Prompt:      "How should the interface feel right now?",
			Description: "We adapt colour, contrast, and motion to match your sensory load.",
			Options: []Option{
				{Value: SensoryLowStim, Label: "Calm + soft", Support: "Minimal animation · muted palette · reading ruler on"},
				{Value: SensoryBalanced, Label: "Balanced contrast", Support: "Standard interface with gentle highlights"},
				{Value: SensoryHighContrast, Label: "High contrast", Support: "Bold outlines · maximum clarity · crisp edges"},
			},
		},
		{
			Key:         QuestionAttention,
			Prompt:      "How is your attention today?",
			Description: "We can shorten modules, activate focus mode, or extend sessions.",
			Options: []Option{
				{Value: AttentionMicro, Label: "Short bursts", Support: "10–12 min sprints + extra reminders"},
				{Value: AttentionSteady, Label: "Steady pacing", Support: "25 min cycles + regular check-ins"},
				{Value: AttentionDeep, Label: "Locked-in mode", Support: "Longer sessions + darker theme"},
			},
		},
		{
			Key:         QuestionIntake,
			Prompt:      "What helps the most with this topic?",
			Description: "We’ll prioritise that format in the multi-mode canvas.",
			Options: []Option{
				{Value: IntakeVisual, Label: "Visual guides", Support: "Storyboards, diagrams, timelines"},
				{Value: IntakeAudio, Label: "Audio walkthroughs", Support: "Calm narration with speed + pitch control"},
				{Value: IntakeText, Label: "Simplified text", Support: "Short sentences + highlighted verbs"},
			},
		},
	}
}
