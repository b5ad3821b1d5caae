package service

import (
	"context"
	"time"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/metrics"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/internal/repository/specification"
	"neurolearn-be/internal/repository/unitofwork"
	"neurolearn-be/pkg/events"
	"neurolearn-be/pkg/pomodoro"
	"neurolearn-be/pkg/store"

	"github.com/google/uuid"
)

type IPomodoroService interface {
	State(ctx context.Context, userId string) (*dto.PomodoroSummaryResponse, error)
	Start(ctx context.Context, userId string) (*dto.PomodoroStateResponse, error)
	Pause(ctx context.Context, userId string) (*dto.PomodoroStateResponse, error)
	Reset(ctx context.Context, userId string) (*dto.PomodoroStateResponse, error)
	SetMode(ctx context.Context, userId string, req *dto.PomodoroModeRequest) (*dto.PomodoroStateResponse, error)
	// RecordCompletion appends a finished phase to the session store.
	RecordCompletion(ctx context.Context, userId string, c pomodoro.Completion) error
	// Timer returns the user's live session timer. REST controls, quiz
	// resolutions and timer sockets all drive this one runner.
	Timer(ctx context.Context, userId string) (*pomodoro.Runner, error)
	// BaseContext is the context session timers tick on.
	BaseContext() context.Context
	Presets() pomodoro.Presets
}

type pomodoroService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   ISessionService
	publisher  events.Publisher
	logger     logger.ILogger
	metrics    *metrics.Metrics
	// baseCtx outlives requests; session timers tick on it.
	baseCtx context.Context
}

func NewPomodoroService(
	baseCtx context.Context,
	uowFactory unitofwork.RepositoryFactory,
	sessions ISessionService,
	publisher events.Publisher,
	log logger.ILogger,
	m *metrics.Metrics,
) IPomodoroService {
	s := &pomodoroService{
		uowFactory: uowFactory,
		sessions:   sessions,
		publisher:  publisher,
		logger:     log,
		metrics:    m,
		baseCtx:    baseCtx,
	}
	sessions.OnTimerComplete(func(userId string, c pomodoro.Completion) {
		if err := s.RecordCompletion(baseCtx, userId, c); err != nil {
			s.logger.Warn("PomodoroService", "Failed to record pomodoro session", map[string]interface{}{"user_id": userId, "error": err.Error()})
		}
	})
	return s
}

func (s *pomodoroService) Presets() pomodoro.Presets {
	return s.sessions.Presets()
}

func (s *pomodoroService) BaseContext() context.Context {
	return s.baseCtx
}

func (s *pomodoroService) Timer(ctx context.Context, userId string) (*pomodoro.Runner, error) {
	var runner *pomodoro.Runner
	err := s.sessions.Read(ctx, userId, func(session *store.LearnerSession) error {
		runner = session.Timer
		return nil
	})
	return runner, err
}

func (s *pomodoroService) do(ctx context.Context, userId string, fn func(t *pomodoro.Timer)) (*dto.PomodoroStateResponse, error) {
	var state pomodoro.State
	err := s.sessions.Read(ctx, userId, func(session *store.LearnerSession) error {
		state = session.Timer.Do(s.baseCtx, fn)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := ToPomodoroStateResponse(state, s.Presets())
	return &res, nil
}

func (s *pomodoroService) State(ctx context.Context, userId string) (*dto.PomodoroSummaryResponse, error) {
	var state pomodoro.State
	err := s.sessions.Read(ctx, userId, func(session *store.LearnerSession) error {
		state = session.Timer.State()
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.PomodoroSessionRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CreatedSince{Since: midnight},
	)
	if err != nil {
		// The timer is still usable without the daily tally.
		s.logger.Warn("PomodoroService", "Failed to count today's sessions", map[string]interface{}{"user_id": userId, "error": err.Error()})
		count = 0
	}

	return &dto.PomodoroSummaryResponse{
		Timer:          ToPomodoroStateResponse(state, s.Presets()),
		CompletedToday: count,
	}, nil
}

func (s *pomodoroService) Start(ctx context.Context, userId string) (*dto.PomodoroStateResponse, error) {
	return s.do(ctx, userId, func(t *pomodoro.Timer) { t.Start() })
}

func (s *pomodoroService) Pause(ctx context.Context, userId string) (*dto.PomodoroStateResponse, error) {
	return s.do(ctx, userId, func(t *pomodoro.Timer) { t.Pause() })
}

func (s *pomodoroService) Reset(ctx context.Context, userId string) (*dto.PomodoroStateResponse, error) {
	return s.do(ctx, userId, func(t *pomodoro.Timer) { t.Reset() })
}

// SetMode switches the timer mode and reloads its duration. A running
// countdown keeps running.
func (s *pomodoroService) SetMode(ctx context.Context, userId string, req *dto.PomodoroModeRequest) (*dto.PomodoroStateResponse, error) {
	mode := pomodoro.Mode(req.Mode)
	if !mode.Valid() {
		return nil, ErrInvalidInput
	}
	return s.do(ctx, userId, func(t *pomodoro.Timer) { t.SetMode(mode) })
}

func (s *pomodoroService) RecordCompletion(ctx context.Context, userId string, c pomodoro.Completion) error {
	s.metrics.PomodoroCompleted(string(c.Mode))

	record := entity.PomodoroSession{
		Id:        uuid.New(),
		UserId:    userId,
		Duration:  c.Minutes,
		Mode:      string(c.Mode),
		Completed: true,
		CreatedAt: c.At,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PomodoroSessionRepository().Create(ctx, &record); err != nil {
		return classifyPersistenceError("record pomodoro session", err)
	}

	publishEvent(s.publisher, s.logger, events.TypePomodoroCompleted, map[string]interface{}{
		"user_id":  userId,
		"mode":     string(c.Mode),
		"duration": c.Minutes,
	})
	return nil
}
