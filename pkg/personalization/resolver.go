package personalization

import (
	"math"

	"neurolearn-be/pkg/preference"
)

const (
	FallbackNote = "Profile synced — adjust controls anytime."
	PendingNote  = "No profile yet — complete the quiz to auto-tune your dashboard."
)

// Responses maps a question to the chosen option value.
type Responses map[QuestionKey]string

// Resolution is the outcome of a completed quiz.
type Resolution struct {
	Updates preference.Updates `json:"updates"`
	Notes   []string           `json:"notes"`
	Mode    *LearningMode      `json:"mode,omitempty"`
	// ResetTimer asks the caller to put the pomodoro back on its focus preset.
	ResetTimer bool `json:"reset_timer"`
}

// DisplayNotes returns Notes, or the fallback note when no rule fired.
func (r Resolution) DisplayNotes() []string {
	if len(r.Notes) == 0 {
		return []string{FallbackNote}
	}
	out := make([]string, len(r.Notes))
	copy(out, r.Notes)
	return out
}

// Resolve applies the rule table to a response set. Notes are emitted in
// question order. A field already set by an earlier question is never
// overwritten by a later one, so attention=deep only darkens the theme when
// the sensory answer left it alone.
func Resolve(responses Responses, current preference.Profile) Resolution {
	var res Resolution

	switch responses[QuestionSensory] {
	case SensoryLowStim:
		res.Updates.SensoryReduced = preference.Ptr(true)
		res.Updates.Theme = preference.Ptr(preference.ThemeCalm)
		res.Updates.TextScale = preference.Ptr(math.Max(current.TextScale, 1.1))
		res.Notes = append(res.Notes, "Enabled sensory-reduced mode with a calm palette.")
	case SensoryHighContrast:
		res.Updates.Theme = preference.Ptr(preference.ThemeContrast)
		res.Updates.SensoryReduced = preference.Ptr(false)
		res.Notes = append(res.Notes, "Activated high-contrast colours for crisp edges.")
	case SensoryBalanced:
		res.Updates.Theme = preference.Ptr(preference.ThemeCalm)
		res.Notes = append(res.Notes, "Kept balanced contrast with predictable highlights.")
	}

	switch responses[QuestionAttention] {
	case AttentionMicro:
		res.Updates.FocusMode = preference.Ptr(true)
		res.ResetTimer = true
		res.Notes = append(res.Notes, "Focus mode stays on for short bursts.")
	case AttentionSteady:
		res.Updates.FocusMode = preference.Ptr(false)
		res.Notes = append(res.Notes, "Scheduled steady 25-minute cycles.")
	case AttentionDeep:
		res.Updates.FocusMode = preference.Ptr(true)
		if res.Updates.Theme == nil {
			res.Updates.Theme = preference.Ptr(preference.ThemeDark)
		}
		res.Notes = append(res.Notes, "Deep-focus styling with darker surfaces.")
	}

	switch responses[QuestionIntake] {
	case IntakeVisual:
		res.Mode = modePtr(ModeVisual)
		res.Notes = append(res.Notes, "Prioritising visual storyboard mode.")
	case IntakeAudio:
		res.Mode = modePtr(ModeAudio)
		res.Notes = append(res.Notes, "Surfacing narrated audio mode first.")
	case IntakeText:
		res.Mode = modePtr(ModeText)
		res.Notes = append(res.Notes, "Keeping simplified text at the forefront.")
	}

	return res
}

func modePtr(m LearningMode) *LearningMode {
	return &m
}
