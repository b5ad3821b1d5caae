package service

import (
	"context"
	"strings"
	"time"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/repository/unitofwork"
)

type IProfileService interface {
	// Sync mirrors the identity provider's view of the user, typically on
	// sign-in.
	Sync(ctx context.Context, userId string, req *dto.SyncProfileRequest) (*dto.ProfileResponse, error)
	Get(ctx context.Context, userId string) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{uowFactory: uowFactory}
}

func (s *profileService) Sync(ctx context.Context, userId string, req *dto.SyncProfileRequest) (*dto.ProfileResponse, error) {
	now := time.Now()
	profile := entity.Profile{
		Id:        userId,
		Email:     strings.TrimSpace(req.Email),
		Username:  strings.TrimSpace(req.Username),
		FullName:  strings.TrimSpace(req.FullName),
		CreatedAt: now,
		UpdatedAt: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProfileRepository().Upsert(ctx, &profile); err != nil {
		return nil, classifyPersistenceError("sync profile", err)
	}
	return toProfileResponse(&profile), nil
}

func (s *profileService) Get(ctx context.Context, userId string) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindById(ctx, userId)
	if err != nil {
		return nil, classifyPersistenceError("get profile", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:        p.Id,
		Email:     p.Email,
		Username:  p.Username,
		FullName:  p.FullName,
		UpdatedAt: p.UpdatedAt,
	}
}
