package service

import (
	"context"

	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/pkg/events"
	pktNats "neurolearn-be/pkg/nats"

	"github.com/nats-io/nats.go/jetstream"
)

// SessionSyncService keeps live sessions on this instance current when
// another instance stores a newer preference profile.
type SessionSyncService struct {
	subscriber *pktNats.Subscriber
	sessions   ISessionService
	instanceID string
	logger     logger.ILogger

	consume jetstream.ConsumeContext
}

func NewSessionSyncService(sub *pktNats.Subscriber, sessions ISessionService, instanceID string, log logger.ILogger) *SessionSyncService {
	return &SessionSyncService{
		subscriber: sub,
		sessions:   sessions,
		instanceID: instanceID,
		logger:     log,
	}
}

func (s *SessionSyncService) Start(ctx context.Context) error {
	cc, err := s.subscriber.Subscribe(ctx, "events."+events.TypePreferencesUpdated, "session-sync-"+s.instanceID, s.HandleEvent)
	if err != nil {
		s.logger.Error("SessionSync", "Failed to start preference subscriber", map[string]interface{}{"error": err})
		return err
	}
	s.consume = cc
	s.logger.Info("SessionSync", "Listening for preference updates", map[string]interface{}{"instance_id": s.instanceID})
	return nil
}

func (s *SessionSyncService) Stop() {
	if s.consume != nil {
		s.consume.Stop()
	}
}

func (s *SessionSyncService) HandleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	if origin, _ := payload["origin"].(string); origin == s.instanceID {
		return nil
	}
	userId, _ := payload["user_id"].(string)
	if userId == "" {
		return nil
	}

	if err := s.sessions.Refresh(ctx, userId); err != nil {
		s.logger.Warn("SessionSync", "Failed to refresh live session", map[string]interface{}{"user_id": userId, "error": err.Error()})
		return err
	}
	return nil
}
