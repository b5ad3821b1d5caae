package service

import (
	"context"
	"time"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/repository/specification"
	"neurolearn-be/internal/repository/unitofwork"
	"neurolearn-be/pkg/personalization"

	"github.com/google/uuid"
)

type IProgressService interface {
	Track(ctx context.Context, userId string, req *dto.TrackProgressRequest) (*dto.ProgressResponse, error)
	List(ctx context.Context, userId string) ([]*dto.ProgressResponse, error)
}

type progressService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProgressService(uowFactory unitofwork.RepositoryFactory) IProgressService {
	return &progressService{uowFactory: uowFactory}
}

func (s *progressService) Track(ctx context.Context, userId string, req *dto.TrackProgressRequest) (*dto.ProgressResponse, error) {
	if !personalization.LearningMode(req.FormatUsed).Valid() || req.TimeSpent < 0 {
		return nil, ErrInvalidInput
	}

	progress := entity.UserProgress{
		Id:         uuid.New(),
		UserId:     userId,
		ContentId:  req.ContentId,
		FormatUsed: req.FormatUsed,
		TimeSpent:  req.TimeSpent,
		Completed:  req.Completed,
		CreatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserProgressRepository().Create(ctx, &progress); err != nil {
		return nil, classifyPersistenceError("track progress", err)
	}
	return toProgressResponse(&progress), nil
}

// progressHistoryLimit caps the reading history returned to the dashboard.
const progressHistoryLimit = 100

func (s *progressService) List(ctx context.Context, userId string) ([]*dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.UserProgressRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
		specification.Pagination{Limit: progressHistoryLimit},
	)
	if err != nil {
		return nil, classifyPersistenceError("list progress", err)
	}

	result := make([]*dto.ProgressResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toProgressResponse(row))
	}
	return result, nil
}

func toProgressResponse(p *entity.UserProgress) *dto.ProgressResponse {
	return &dto.ProgressResponse{
		Id:         p.Id,
		ContentId:  p.ContentId,
		FormatUsed: p.FormatUsed,
		TimeSpent:  p.TimeSpent,
		Completed:  p.Completed,
		CreatedAt:  p.CreatedAt,
	}
}
