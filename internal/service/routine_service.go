package service

import (
	"context"
	"fmt"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/internal/repository/memory"
	"neurolearn-be/pkg/executive"
	"neurolearn-be/pkg/store"

	"github.com/robfig/cron/v3"
)

type IRoutineService interface {
	View(ctx context.Context, userId string) (*dto.RoutineResponse, error)
	Toggle(ctx context.Context, userId string, block string, index int) (*dto.RoutineResponse, error)
	// ResetAll clears every live checklist and returns how many were cleared.
	ResetAll() int
	// Start schedules the daily reset. Stop must be called on shutdown.
	Start(schedule string) error
	Stop() context.Context
}

type routineService struct {
	sessions ISessionService
	store    *memory.SessionRepository
	logger   logger.ILogger
	cron     *cron.Cron
}

func NewRoutineService(sessions ISessionService, sessionStore *memory.SessionRepository, log logger.ILogger) IRoutineService {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	return &routineService{
		sessions: sessions,
		store:    sessionStore,
		logger:   log,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
	}
}

func (s *routineService) View(ctx context.Context, userId string) (*dto.RoutineResponse, error) {
	var res *dto.RoutineResponse
	err := s.sessions.Read(ctx, userId, func(session *store.LearnerSession) error {
		res = toRoutineResponse(session.Routine)
		return nil
	})
	return res, err
}

func (s *routineService) Toggle(ctx context.Context, userId string, block string, index int) (*dto.RoutineResponse, error) {
	var res *dto.RoutineResponse
	err := s.sessions.Read(ctx, userId, func(session *store.LearnerSession) error {
		if _, err := session.Routine.Toggle(executive.RoutineBlock(block), index); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		res = toRoutineResponse(session.Routine)
		return nil
	})
	return res, err
}

func (s *routineService) ResetAll() int {
	cleared := 0
	s.store.Range(func(session *store.LearnerSession) {
		session.Mu.Lock()
		session.Routine.Clear()
		session.Mu.Unlock()
		cleared++
	})
	s.logger.Info("RoutineService", "Daily routine checklists reset", map[string]interface{}{"sessions": cleared})
	return cleared
}

func (s *routineService) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.ResetAll() }); err != nil {
		return fmt.Errorf("invalid routine reset schedule %q: %w", schedule, err)
	}
	s.cron.Start()
	return nil
}

func (s *routineService) Stop() context.Context {
	return s.cron.Stop()
}

func toRoutineResponse(c *executive.Checklist) *dto.RoutineResponse {
	view := c.View()
	convert := func(block executive.RoutineBlock) []dto.RoutineStepResponse {
		steps := view[block]
		out := make([]dto.RoutineStepResponse, 0, len(steps))
		for i, step := range steps {
			out = append(out, dto.RoutineStepResponse{Index: i, Label: step.Label, Checked: step.Checked})
		}
		return out
	}
	return &dto.RoutineResponse{
		Morning: convert(executive.RoutineMorning),
		Evening: convert(executive.RoutineEvening),
	}
}
