package store

import (
	"context"
	"sync"
	"time"

	"neurolearn-be/pkg/executive"
	"neurolearn-be/pkg/personalization"
	"neurolearn-be/pkg/pomodoro"
	"neurolearn-be/pkg/preference"
)

// LearnerSession is the live dashboard state of one signed-in user. Callers
// must hold Mu while reading or mutating any field except Timer, which
// carries its own lock.
type LearnerSession struct {
	Mu sync.Mutex

	UserID     string
	Profile    preference.Profile
	ActiveMode personalization.LearningMode

	Quiz  *personalization.Quiz
	Notes []string

	Timer   *pomodoro.Runner
	Routine *executive.Checklist

	LoadedAt time.Time
}

func NewLearnerSession(profile preference.Profile, presets pomodoro.Presets, timerOpts ...pomodoro.RunnerOption) *LearnerSession {
	return &LearnerSession{
		UserID:     profile.UserID,
		Profile:    profile.Clamp(),
		ActiveMode: personalization.ModeText,
		Quiz:       personalization.NewQuiz(),
		Notes:      []string{personalization.PendingNote},
		Timer:      pomodoro.NewRunner(pomodoro.NewTimer(presets), timerOpts...),
		Routine:    executive.NewChecklist(),
		LoadedAt:   time.Now(),
	}
}

// Edit merges a direct control change into the live profile and reports
// whether anything changed.
func (s *LearnerSession) Edit(u preference.Updates) bool {
	next := preference.Merge(s.Profile, u)
	if next == s.Profile {
		return false
	}
	s.Profile = next
	return true
}

// Apply merges a quiz resolution: profile fields, active mode, notes, and
// the focus-preset timer reset. It reports whether the profile changed.
func (s *LearnerSession) Apply(res personalization.Resolution) bool {
	changed := s.Edit(res.Updates)
	if res.Mode != nil && res.Mode.Valid() {
		s.ActiveMode = *res.Mode
	}
	s.Notes = res.DisplayNotes()
	if res.ResetTimer {
		s.Timer.Do(context.Background(), func(t *pomodoro.Timer) {
			t.Pause()
			t.SetMode(pomodoro.ModeFocus)
			t.Reset()
		})
	}
	return changed
}

// SetMode switches the active content mode. Unknown modes are ignored.
func (s *LearnerSession) SetMode(m personalization.LearningMode) bool {
	if !m.Valid() {
		return false
	}
	s.ActiveMode = m
	return true
}

// View is a copy of the session safe to hand out after Mu is released.
type View struct {
	UserID     string
	Profile    preference.Profile
	ActiveMode personalization.LearningMode
	Notes      []string
	Timer      pomodoro.State
	LoadedAt   time.Time
}

func (s *LearnerSession) View() View {
	notes := make([]string, len(s.Notes))
	copy(notes, s.Notes)
	return View{
		UserID:     s.UserID,
		Profile:    s.Profile,
		ActiveMode: s.ActiveMode,
		Notes:      notes,
		Timer:      s.Timer.State(),
		LoadedAt:   s.LoadedAt,
	}
}
