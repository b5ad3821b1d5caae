package service

import (
	"context"
	"strings"
	"time"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/metrics"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/internal/repository/specification"
	"neurolearn-be/internal/repository/unitofwork"
	"neurolearn-be/pkg/energy"
	"neurolearn-be/pkg/events"

	"github.com/google/uuid"
)

const DefaultEnergyWindowDays = 7

type IEnergyService interface {
	Log(ctx context.Context, userId string, req *dto.LogEnergyRequest) (*dto.EnergyLogResponse, error)
	List(ctx context.Context, userId string, sinceDays int) ([]*dto.EnergyLogResponse, error)
	Suggestion(slider int) *dto.EnergySuggestionResponse
}

type energyService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
	metrics    *metrics.Metrics
}

func NewEnergyService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger, m *metrics.Metrics) IEnergyService {
	return &energyService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
		metrics:    m,
	}
}

func (s *energyService) Log(ctx context.Context, userId string, req *dto.LogEnergyRequest) (*dto.EnergyLogResponse, error) {
	var level int
	switch {
	case req.Slider != nil:
		level = energy.ScaleSlider(*req.Slider)
	case req.Level != nil:
		level = energy.ClampLevel(*req.Level)
	default:
		return nil, ErrInvalidInput
	}

	var notes *string
	if req.Notes != nil && strings.TrimSpace(*req.Notes) != "" {
		trimmed := strings.TrimSpace(*req.Notes)
		notes = &trimmed
	}

	log := entity.EnergyLog{
		Id:          uuid.New(),
		UserId:      userId,
		EnergyLevel: level,
		Feeling:     strings.TrimSpace(req.Feeling),
		Notes:       notes,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EnergyLogRepository().Create(ctx, &log); err != nil {
		return nil, classifyPersistenceError("append energy log", err)
	}

	s.metrics.EnergyLogged()
	publishEvent(s.publisher, s.logger, events.TypeEnergyLogged, map[string]interface{}{
		"user_id":      userId,
		"energy_level": level,
		"feeling":      log.Feeling,
	})

	return toEnergyLogResponse(&log), nil
}

// List returns entries from the last sinceDays days, most recent first.
func (s *energyService) List(ctx context.Context, userId string, sinceDays int) ([]*dto.EnergyLogResponse, error) {
	if sinceDays <= 0 {
		sinceDays = DefaultEnergyWindowDays
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.EnergyLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CreatedSince{Since: time.Now().AddDate(0, 0, -sinceDays)},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, classifyPersistenceError("list energy logs", err)
	}

	result := make([]*dto.EnergyLogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, toEnergyLogResponse(log))
	}
	return result, nil
}

func (s *energyService) Suggestion(slider int) *dto.EnergySuggestionResponse {
	suggestion := energy.Suggest(slider)
	return &dto.EnergySuggestionResponse{
		Slider:  slider,
		Level:   energy.ScaleSlider(slider),
		Band:    string(suggestion.Band),
		Message: suggestion.Message,
	}
}

func toEnergyLogResponse(log *entity.EnergyLog) *dto.EnergyLogResponse {
	return &dto.EnergyLogResponse{
		Id:          log.Id,
		EnergyLevel: log.EnergyLevel,
		Feeling:     log.Feeling,
		Notes:       log.Notes,
		CreatedAt:   log.CreatedAt,
	}
}
