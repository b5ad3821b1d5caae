package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"neurolearn-be/internal/dto"
	"neurolearn-be/pkg/personalization"
	"neurolearn-be/pkg/preference"
	"neurolearn-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_SnapshotLoadsDefaults(t *testing.T) {
	h := newHarness(t.Context())

	view, err := h.sessions.Snapshot(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, preference.Defaults("u1"), view.Profile)
	assert.Equal(t, personalization.ModeText, view.ActiveMode)
	assert.Equal(t, []string{personalization.PendingNote}, view.Notes)
}

func TestSessionService_SnapshotLoadFailure(t *testing.T) {
	h := newHarness(t.Context())
	h.db.failReads = errors.New("connection refused")

	_, err := h.sessions.Snapshot(context.Background(), "u1")

	assert.Error(t, err)
	assert.Zero(t, h.store.Count(), "a failed load must not cache a default session")
}

func TestSessionService_EditPersistsCompleteProfile(t *testing.T) {
	h := newHarness(t.Context())
	ctx := context.Background()

	view, result, err := h.sessions.Edit(ctx, "u1", preference.Updates{Theme: preference.Ptr(preference.ThemeContrast)}, nil)
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeContrast, view.Profile.Theme)
	require.NoError(t, waitResult(result))

	row := h.storedProfile("u1")
	require.NotNil(t, row)
	assert.Equal(t, "contrast", row.Theme)
	assert.Equal(t, "lexend", row.FontFamily)
	assert.Equal(t, 1.6, row.LineHeight)

	assert.Eventually(t, func() bool {
		v, _ := h.sessions.Snapshot(ctx, "u1")
		return v.Profile.Version == 1
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		for _, typ := range h.publisher.types() {
			if typ == "PREFERENCES_UPDATED" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestSessionService_EditWithoutChangeSkipsWrite(t *testing.T) {
	h := newHarness(t.Context())

	_, result, err := h.sessions.Edit(context.Background(), "u1", preference.Updates{Theme: preference.Ptr(preference.ThemeCalm)}, nil)

	require.NoError(t, err)
	require.NoError(t, waitResult(result))
	assert.Zero(t, h.db.writes)
}

func TestSessionService_EditKeepsLocalStateOnFailure(t *testing.T) {
	h := newHarness(t.Context())
	ctx := context.Background()
	_, err := h.sessions.Snapshot(ctx, "u1")
	require.NoError(t, err)
	h.db.failWrites = errors.New("store offline")

	view, result, err := h.sessions.Edit(ctx, "u1", preference.Updates{FocusMode: preference.Ptr(true)}, nil)
	require.NoError(t, err)
	assert.True(t, view.Profile.FocusMode)

	assert.ErrorContains(t, waitResult(result), "store offline")

	after, err := h.sessions.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, after.Profile.FocusMode)
}

func TestSessionService_EditVersionConflict(t *testing.T) {
	h := newHarness(t.Context())
	ctx := context.Background()
	seeded := preference.Defaults("u1")
	seeded.Version = 4
	h.seed(seeded)

	stale := int64(2)
	_, _, err := h.sessions.Edit(ctx, "u1", preference.Updates{Theme: preference.Ptr(preference.ThemeDark)}, &stale)
	assert.ErrorIs(t, err, ErrVersionConflict)

	view, err := h.sessions.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeCalm, view.Profile.Theme)

	current := int64(4)
	_, result, err := h.sessions.Edit(ctx, "u1", preference.Updates{Theme: preference.Ptr(preference.ThemeDark)}, &current)
	require.NoError(t, err)
	require.NoError(t, waitResult(result))
	assert.Equal(t, int64(5), h.storedProfile("u1").Version)
}

func TestSessionService_StoreConflictKeepsSessionState(t *testing.T) {
	h := newHarness(t.Context())
	ctx := context.Background()
	quiz := NewQuizService(h.sessions, h.publisher, h.log, h.metrics)
	timer := NewPomodoroService(t.Context(), h.factory, h.sessions, h.publisher, h.log, h.metrics)

	_, err := quiz.Answer(ctx, "u1", &dto.QuizAnswerRequest{Key: "sensory", Value: personalization.SensoryLowStim})
	require.NoError(t, err)
	advanced, err := quiz.Advance(ctx, "u1")
	require.NoError(t, err)
	require.True(t, advanced.Advanced)
	_, err = h.sessions.SetMode(ctx, "u1", personalization.ModeAudio)
	require.NoError(t, err)
	_, err = timer.Start(ctx, "u1")
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = timer.Pause(context.Background(), "u1") })

	// Another device writes first.
	other := preference.Defaults("u1")
	other.Theme = preference.ThemeDark
	other.Version = 1
	h.seed(other)

	zero := int64(0)
	_, result, err := h.sessions.Edit(ctx, "u1", preference.Updates{FocusMode: preference.Ptr(true)}, &zero)
	require.NoError(t, err)
	assert.ErrorIs(t, waitResult(result), ErrVersionConflict)

	assert.Eventually(t, func() bool {
		v, _ := h.sessions.Snapshot(ctx, "u1")
		return v.Profile.Theme == preference.ThemeDark
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, h.store.Count())
	err = h.sessions.Read(ctx, "u1", func(s *store.LearnerSession) error {
		assert.Equal(t, int64(1), s.Profile.Version)
		assert.False(t, s.Profile.FocusMode, "the losing edit is replaced by the stored profile")
		assert.Equal(t, 1, s.Quiz.Step())
		assert.Equal(t, personalization.SensoryLowStim, s.Quiz.Responses()[personalization.QuestionSensory])
		assert.Equal(t, personalization.ModeAudio, s.ActiveMode)
		assert.True(t, s.Timer.State().Running)
		return nil
	})
	require.NoError(t, err)
}

func TestSessionService_StoreConflictKeepsProfileWhenReloadFails(t *testing.T) {
	h := newHarness(t.Context())
	ctx := context.Background()
	_, err := h.sessions.Snapshot(ctx, "u1")
	require.NoError(t, err)

	other := preference.Defaults("u1")
	other.Version = 1
	h.seed(other)

	h.db.mu.Lock()
	h.db.failReads = errors.New("connection refused")
	h.db.mu.Unlock()

	zero := int64(0)
	_, result, err := h.sessions.Edit(ctx, "u1", preference.Updates{FocusMode: preference.Ptr(true)}, &zero)
	require.NoError(t, err)
	assert.ErrorIs(t, waitResult(result), ErrVersionConflict)

	view, err := h.sessions.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, view.Profile.FocusMode)
	assert.Equal(t, 1, h.store.Count())
}

func TestSessionService_ApplyResolution(t *testing.T) {
	h := newHarness(t.Context())
	ctx := context.Background()

	res := personalization.Resolve(personalization.Responses{
		personalization.QuestionSensory:   personalization.SensoryHighContrast,
		personalization.QuestionAttention: personalization.AttentionSteady,
		personalization.QuestionIntake:    personalization.IntakeAudio,
	}, preference.Defaults("u1"))

	view, result, err := h.sessions.ApplyResolution(ctx, "u1", res)
	require.NoError(t, err)
	require.NoError(t, waitResult(result))

	assert.Equal(t, preference.ThemeContrast, view.Profile.Theme)
	assert.Equal(t, personalization.ModeAudio, view.ActiveMode)
	assert.Equal(t, res.Notes, view.Notes)
	assert.Equal(t, "contrast", h.storedProfile("u1").Theme)
}

func TestSessionService_SetMode(t *testing.T) {
	h := newHarness(t.Context())
	ctx := context.Background()

	view, err := h.sessions.SetMode(ctx, "u1", personalization.ModeGamified)
	require.NoError(t, err)
	assert.Equal(t, personalization.ModeGamified, view.ActiveMode)

	_, err = h.sessions.SetMode(ctx, "u1", "smell")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, h.db.writes)
}

func TestSessionService_UpdatePropagatesError(t *testing.T) {
	h := newHarness(t.Context())
	boom := errors.New("boom")

	_, _, err := h.sessions.Update(context.Background(), "u1", func(s *store.LearnerSession) (bool, error) {
		return false, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestSessionService_Refresh(t *testing.T) {
	h := newHarness(t.Context())
	ctx := context.Background()
	_, err := h.sessions.Snapshot(ctx, "u1")
	require.NoError(t, err)

	newer := preference.Defaults("u1")
	newer.Theme = preference.ThemeDark
	newer.Version = 9
	h.seed(newer)

	require.NoError(t, h.sessions.Refresh(ctx, "u1"))

	view, err := h.sessions.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeDark, view.Profile.Theme)
	assert.Equal(t, int64(9), view.Profile.Version)

	assert.NoError(t, h.sessions.Refresh(ctx, "not-loaded"))
}
