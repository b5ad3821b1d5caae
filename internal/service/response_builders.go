package service

import (
	"neurolearn-be/internal/dto"
	"neurolearn-be/pkg/personalization"
	"neurolearn-be/pkg/pomodoro"
	"neurolearn-be/pkg/preference"
	"neurolearn-be/pkg/store"
)

func toPreferenceResponse(p preference.Profile) dto.PreferenceResponse {
	return dto.PreferenceResponse{
		UserId:         p.UserID,
		FontFamily:     string(p.FontFamily),
		TextScale:      p.TextScale,
		LetterSpacing:  p.LetterSpacing,
		LineHeight:     p.LineHeight,
		Theme:          string(p.Theme),
		SensoryReduced: p.SensoryReduced,
		FocusMode:      p.FocusMode,
		Version:        p.Version,
	}
}

// ToPomodoroStateResponse is shared with the live timer socket handler.
func ToPomodoroStateResponse(s pomodoro.State, presets pomodoro.Presets) dto.PomodoroStateResponse {
	return dto.PomodoroStateResponse{
		Mode:             string(s.Mode),
		SecondsRemaining: s.SecondsRemaining,
		Running:          s.Running,
		Display:          s.Display,
		FocusMinutes:     presets.Focus,
		BreakMinutes:     presets.Break,
	}
}

func toSessionResponse(v store.View, presets pomodoro.Presets) *dto.SessionResponse {
	return &dto.SessionResponse{
		Preferences: toPreferenceResponse(v.Profile),
		ActiveMode:  string(v.ActiveMode),
		Notes:       v.Notes,
		Timer:       ToPomodoroStateResponse(v.Timer, presets),
		LoadedAt:    v.LoadedAt,
	}
}

func toQuizStateResponse(q *personalization.Quiz, notes []string) dto.QuizStateResponse {
	current := q.Current()
	options := make([]dto.QuizOption, 0, len(current.Options))
	for _, o := range current.Options {
		options = append(options, dto.QuizOption{Value: o.Value, Label: o.Label, Support: o.Support})
	}

	responses := make(map[string]string)
	for key, value := range q.Responses() {
		responses[string(key)] = value
	}

	out := make([]string, len(notes))
	copy(out, notes)

	return dto.QuizStateResponse{
		Step:     q.Step(),
		Total:    q.QuestionCount(),
		Complete: q.Complete(),
		Progress: q.ProgressFraction(),
		Current: dto.QuizQuestion{
			Key:         string(current.Key),
			Prompt:      current.Prompt,
			Description: current.Description,
			Options:     options,
		},
		Responses: responses,
		Notes:     out,
	}
}
