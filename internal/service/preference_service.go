package service

import (
	"context"

	"neurolearn-be/internal/mapper"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/internal/repository/cache"
	"neurolearn-be/internal/repository/unitofwork"
	"neurolearn-be/pkg/preference"
)

type IPreferenceService interface {
	// Load returns the stored profile, or defaults when the user has none.
	Load(ctx context.Context, userId string) (preference.Profile, error)
	// Save upserts the complete profile and returns what was stored.
	Save(ctx context.Context, profile preference.Profile, expectedVersion *int64) (preference.Profile, error)
}

type preferenceService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      cache.PreferenceCache
	mapper     *mapper.UserPreferenceMapper
	logger     logger.ILogger
}

func NewPreferenceService(
	uowFactory unitofwork.RepositoryFactory,
	prefCache cache.PreferenceCache,
	log logger.ILogger,
) IPreferenceService {
	if prefCache == nil {
		prefCache = cache.NopPreferenceCache{}
	}
	return &preferenceService{
		uowFactory: uowFactory,
		cache:      prefCache,
		mapper:     mapper.NewUserPreferenceMapper(),
		logger:     log,
	}
}

func (s *preferenceService) Load(ctx context.Context, userId string) (preference.Profile, error) {
	if cached, err := s.cache.Get(ctx, userId); err != nil {
		s.logger.Warn("PreferenceService", "Preference cache read failed", map[string]interface{}{"user_id": userId, "error": err.Error()})
	} else if cached != nil {
		return cached.Clamp(), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	row, err := uow.UserPreferenceRepository().FindByUserId(ctx, userId)
	if err != nil {
		return preference.Defaults(userId), classifyPersistenceError("load preferences", err)
	}
	if row == nil {
		return preference.Defaults(userId), nil
	}

	profile := s.mapper.ToProfile(row)
	s.remember(ctx, profile)
	return profile, nil
}

func (s *preferenceService) Save(ctx context.Context, profile preference.Profile, expectedVersion *int64) (preference.Profile, error) {
	row := s.mapper.FromProfile(profile.Clamp())

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserPreferenceRepository().Upsert(ctx, row, expectedVersion); err != nil {
		if cacheErr := s.cache.Invalidate(ctx, profile.UserID); cacheErr != nil {
			s.logger.Warn("PreferenceService", "Preference cache invalidate failed", map[string]interface{}{"user_id": profile.UserID, "error": cacheErr.Error()})
		}
		return profile, classifyPersistenceError("save preferences", err)
	}

	stored := s.mapper.ToProfile(row)
	s.remember(ctx, stored)
	return stored, nil
}

func (s *preferenceService) remember(ctx context.Context, profile preference.Profile) {
	if err := s.cache.Set(ctx, profile); err != nil {
		s.logger.Warn("PreferenceService", "Preference cache write failed", map[string]interface{}{"user_id": profile.UserID, "error": err.Error()})
	}
}
