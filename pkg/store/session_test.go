package store

import (
	"testing"

	"neurolearn-be/pkg/personalization"
	"neurolearn-be/pkg/pomodoro"
	"neurolearn-be/pkg/preference"

	"github.com/stretchr/testify/assert"
)

func newSession() *LearnerSession {
	return NewLearnerSession(preference.Defaults("u1"), pomodoro.DefaultPresets)
}

func TestNewLearnerSession_Defaults(t *testing.T) {
	s := newSession()

	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, personalization.ModeText, s.ActiveMode)
	assert.Equal(t, []string{personalization.PendingNote}, s.Notes)
	assert.False(t, s.Quiz.Complete())
	assert.Equal(t, pomodoro.ModeFocus, s.Timer.State().Mode)
}

func TestLearnerSession_Edit(t *testing.T) {
	s := newSession()
	before := s.Profile

	changed := s.Edit(preference.Updates{Theme: preference.Ptr(preference.ThemeContrast)})

	assert.True(t, changed)
	assert.Equal(t, preference.ThemeContrast, s.Profile.Theme)
	before.Theme = preference.ThemeContrast
	assert.Equal(t, before, s.Profile)

	assert.False(t, s.Edit(preference.Updates{Theme: preference.Ptr(preference.ThemeContrast)}))
	assert.False(t, s.Edit(preference.Updates{}))
}

func TestLearnerSession_Edit_Clamps(t *testing.T) {
	s := newSession()

	s.Edit(preference.Updates{TextScale: preference.Ptr(9.0), LineHeight: preference.Ptr(0.1)})

	assert.Equal(t, 1.6, s.Profile.TextScale)
	assert.Equal(t, 1.2, s.Profile.LineHeight)
}

func TestLearnerSession_Apply(t *testing.T) {
	s := newSession()
	s.Timer.Do(t.Context(), func(timer *pomodoro.Timer) {
		timer.SetMode(pomodoro.ModeBreak)
	})

	res := personalization.Resolve(personalization.Responses{
		personalization.QuestionSensory:   personalization.SensoryLowStim,
		personalization.QuestionAttention: personalization.AttentionMicro,
		personalization.QuestionIntake:    personalization.IntakeVisual,
	}, s.Profile)

	changed := s.Apply(res)

	assert.True(t, changed)
	assert.True(t, s.Profile.SensoryReduced)
	assert.True(t, s.Profile.FocusMode)
	assert.Equal(t, preference.ThemeCalm, s.Profile.Theme)
	assert.GreaterOrEqual(t, s.Profile.TextScale, 1.1)
	assert.Equal(t, personalization.ModeVisual, s.ActiveMode)
	assert.Len(t, s.Notes, 3)

	state := s.Timer.State()
	assert.Equal(t, pomodoro.ModeFocus, state.Mode)
	assert.Equal(t, 25*60, state.SecondsRemaining)
	assert.False(t, state.Running)
}

func TestLearnerSession_Apply_EmptyUsesFallbackNote(t *testing.T) {
	s := newSession()

	changed := s.Apply(personalization.Resolve(personalization.Responses{}, s.Profile))

	assert.False(t, changed)
	assert.Equal(t, []string{personalization.FallbackNote}, s.Notes)
	assert.Equal(t, personalization.ModeText, s.ActiveMode)
}

func TestLearnerSession_SetMode(t *testing.T) {
	s := newSession()

	assert.True(t, s.SetMode(personalization.ModeAudio))
	assert.Equal(t, personalization.ModeAudio, s.ActiveMode)

	assert.False(t, s.SetMode("holographic"))
	assert.Equal(t, personalization.ModeAudio, s.ActiveMode)
}

func TestLearnerSession_View_IsCopy(t *testing.T) {
	s := newSession()
	v := s.View()
	v.Notes[0] = "changed"

	assert.Equal(t, personalization.PendingNote, s.Notes[0])
}
