package service

import (
	"context"
	"time"

	"neurolearn-be/internal/metrics"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/internal/repository/memory"
	"neurolearn-be/pkg/events"
	"neurolearn-be/pkg/personalization"
	"neurolearn-be/pkg/pomodoro"
	"neurolearn-be/pkg/preference"
	"neurolearn-be/pkg/store"
)

const resyncTimeout = 5 * time.Second

// TimerCompleteFunc is called when a session's pomodoro phase runs out.
type TimerCompleteFunc func(userId string, c pomodoro.Completion)

type ISessionService interface {
	Snapshot(ctx context.Context, userId string) (store.View, error)
	// Edit merges direct control changes. A non-nil expectedVersion must
	// match the live profile version or ErrVersionConflict is returned.
	Edit(ctx context.Context, userId string, updates preference.Updates, expectedVersion *int64) (store.View, <-chan error, error)
	ApplyResolution(ctx context.Context, userId string, res personalization.Resolution) (store.View, <-chan error, error)
	SetMode(ctx context.Context, userId string, mode personalization.LearningMode) (store.View, error)

	// Update runs fn under the session lock and persists the profile when fn
	// reports a change.
	Update(ctx context.Context, userId string, fn func(s *store.LearnerSession) (bool, error)) (store.View, <-chan error, error)
	// Read runs fn under the session lock without persisting.
	Read(ctx context.Context, userId string, fn func(s *store.LearnerSession) error) error

	// Refresh replaces the live profile with a newer stored one.
	Refresh(ctx context.Context, userId string) error
	HandlePersisted(stored preference.Profile, conflict bool)
	OnTimerComplete(fn TimerCompleteFunc)
	Presets() pomodoro.Presets
}

type sessionService struct {
	sessions    *memory.SessionRepository
	preferences IPreferenceService
	queue       IPersistenceQueue
	publisher   events.Publisher
	instanceID  string
	presets     pomodoro.Presets
	logger      logger.ILogger
	metrics     *metrics.Metrics

	onTimerComplete TimerCompleteFunc
}

func NewSessionService(
	sessions *memory.SessionRepository,
	preferences IPreferenceService,
	queue IPersistenceQueue,
	publisher events.Publisher,
	instanceID string,
	presets pomodoro.Presets,
	log logger.ILogger,
	m *metrics.Metrics,
) ISessionService {
	return &sessionService{
		sessions:    sessions,
		preferences: preferences,
		queue:       queue,
		publisher:   publisher,
		instanceID:  instanceID,
		presets:     presets,
		logger:      log,
		metrics:     m,
	}
}

func (s *sessionService) Presets() pomodoro.Presets {
	return s.presets
}

func (s *sessionService) OnTimerComplete(fn TimerCompleteFunc) {
	s.onTimerComplete = fn
}

// HandlePersisted keeps live sessions in step with the store. It is wired as
// the persistence worker's callback.
func (s *sessionService) HandlePersisted(stored preference.Profile, conflict bool) {
	if conflict {
		s.resync(stored.UserID)
		return
	}

	if session, ok := s.sessions.Get(stored.UserID); ok {
		session.Mu.Lock()
		if stored.Version > session.Profile.Version {
			session.Profile.Version = stored.Version
		}
		session.Mu.Unlock()
	}

	publishEvent(s.publisher, s.logger, events.TypePreferencesUpdated, map[string]interface{}{
		"user_id": stored.UserID,
		"version": stored.Version,
		"origin":  s.instanceID,
	})
}

// resync replaces the live profile with the stored one after another writer
// won. Quiz progress, active mode, notes, routine and timer stay as they are.
// When the store cannot be read the local profile is kept.
func (s *sessionService) resync(userId string) {
	session, ok := s.sessions.Get(userId)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), resyncTimeout)
	defer cancel()
	profile, err := s.preferences.Load(ctx, userId)
	if err != nil {
		s.logger.Warn("SessionService", "Failed to reload preferences after conflict", map[string]interface{}{"user_id": userId, "error": err.Error()})
		return
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()
	if profile.Version >= session.Profile.Version {
		session.Profile = profile
	}
}

func (s *sessionService) load(ctx context.Context, userId string) (*store.LearnerSession, error) {
	if session, ok := s.sessions.Get(userId); ok {
		return session, nil
	}

	profile, err := s.preferences.Load(ctx, userId)
	if err != nil {
		s.logger.Error("SessionService", "Failed to load preferences", map[string]interface{}{"user_id": userId, "error": err})
		return nil, err
	}

	session := s.sessions.GetOrCreate(userId, func() *store.LearnerSession {
		return store.NewLearnerSession(profile, s.presets, pomodoro.OnComplete(func(c pomodoro.Completion) {
			if s.onTimerComplete != nil {
				s.onTimerComplete(userId, c)
			}
		}))
	})
	s.metrics.SetLiveSessions(s.sessions.Count())
	return session, nil
}

func (s *sessionService) Snapshot(ctx context.Context, userId string) (store.View, error) {
	var view store.View
	err := s.Read(ctx, userId, func(session *store.LearnerSession) error {
		view = session.View()
		return nil
	})
	return view, err
}

func (s *sessionService) Read(ctx context.Context, userId string, fn func(s *store.LearnerSession) error) error {
	session, err := s.load(ctx, userId)
	if err != nil {
		return err
	}
	session.Mu.Lock()
	defer session.Mu.Unlock()
	return fn(session)
}

func (s *sessionService) Update(ctx context.Context, userId string, fn func(s *store.LearnerSession) (bool, error)) (store.View, <-chan error, error) {
	session, err := s.load(ctx, userId)
	if err != nil {
		return store.View{}, nil, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	changed, err := fn(session)
	if err != nil {
		return store.View{}, nil, err
	}

	// Enqueued under the lock so jobs for one user keep edit order.
	result := completed()
	if changed {
		result = s.queue.Enqueue(ctx, session.Profile, nil)
	}
	return session.View(), result, nil
}

func (s *sessionService) Edit(ctx context.Context, userId string, updates preference.Updates, expectedVersion *int64) (store.View, <-chan error, error) {
	session, err := s.load(ctx, userId)
	if err != nil {
		return store.View{}, nil, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	if expectedVersion != nil && *expectedVersion != session.Profile.Version {
		return session.View(), nil, ErrVersionConflict
	}
	if !session.Edit(updates) {
		return session.View(), completed(), nil
	}
	return session.View(), s.queue.Enqueue(ctx, session.Profile, expectedVersion), nil
}

func (s *sessionService) ApplyResolution(ctx context.Context, userId string, res personalization.Resolution) (store.View, <-chan error, error) {
	return s.Update(ctx, userId, func(session *store.LearnerSession) (bool, error) {
		return session.Apply(res), nil
	})
}

func (s *sessionService) SetMode(ctx context.Context, userId string, mode personalization.LearningMode) (store.View, error) {
	if !mode.Valid() {
		return store.View{}, ErrInvalidInput
	}
	view, _, err := s.Update(ctx, userId, func(session *store.LearnerSession) (bool, error) {
		session.SetMode(mode)
		return false, nil
	})
	return view, err
}

func (s *sessionService) Refresh(ctx context.Context, userId string) error {
	session, ok := s.sessions.Get(userId)
	if !ok {
		return nil
	}

	profile, err := s.preferences.Load(ctx, userId)
	if err != nil {
		return err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()
	if profile.Version > session.Profile.Version {
		session.Profile = profile
	}
	return nil
}

func completed() <-chan error {
	ch := make(chan error, 1)
	ch <- nil
	close(ch)
	return ch
}
