package service

import (
	"context"

	"neurolearn-be/internal/dto"
	"neurolearn-be/pkg/personalization"
	"neurolearn-be/pkg/preference"
)

// ILearnerService is the HTTP-facing view of the live learner session:
// preference controls and the active content mode.
type ILearnerService interface {
	GetPreferences(ctx context.Context, userId string) (*dto.PreferenceResponse, error)
	UpdatePreferences(ctx context.Context, userId string, req *dto.UpdatePreferenceRequest) (*dto.UpdatePreferenceResponse, error)
	GetSession(ctx context.Context, userId string) (*dto.SessionResponse, error)
	SetMode(ctx context.Context, userId string, req *dto.SetModeRequest) (*dto.SessionResponse, error)
}

type learnerService struct {
	sessions ISessionService
}

func NewLearnerService(sessions ISessionService) ILearnerService {
	return &learnerService{sessions: sessions}
}

func (s *learnerService) GetPreferences(ctx context.Context, userId string) (*dto.PreferenceResponse, error) {
	view, err := s.sessions.Snapshot(ctx, userId)
	if err != nil {
		return nil, err
	}
	res := toPreferenceResponse(view.Profile)
	return &res, nil
}

func (s *learnerService) UpdatePreferences(ctx context.Context, userId string, req *dto.UpdatePreferenceRequest) (*dto.UpdatePreferenceResponse, error) {
	updates := preference.Updates{
		TextScale:      req.TextScale,
		LetterSpacing:  req.LetterSpacing,
		LineHeight:     req.LineHeight,
		SensoryReduced: req.SensoryReduced,
		FocusMode:      req.FocusMode,
	}
	if req.FontFamily != nil {
		updates.FontFamily = preference.Ptr(preference.FontFamily(*req.FontFamily))
	}
	if req.Theme != nil {
		updates.Theme = preference.Ptr(preference.Theme(*req.Theme))
	}

	view, result, err := s.sessions.Edit(ctx, userId, updates, req.Version)
	if err != nil {
		return nil, err
	}

	res := &dto.UpdatePreferenceResponse{
		Preferences: toPreferenceResponse(view.Profile),
	}
	if !req.Wait && req.Version == nil {
		return res, nil
	}

	select {
	case err := <-result:
		if err != nil {
			// Local state is kept either way; a lost version race is the
			// only failure reported as an error.
			if req.Version != nil && isVersionConflict(err) {
				return nil, err
			}
			res.PersistError = err.Error()
			return res, nil
		}
		res.Persisted = true
		if latest, snapErr := s.sessions.Snapshot(ctx, userId); snapErr == nil {
			res.Preferences = toPreferenceResponse(latest.Profile)
		}
		return res, nil
	case <-ctx.Done():
		res.PersistError = ctx.Err().Error()
		return res, nil
	}
}

func (s *learnerService) GetSession(ctx context.Context, userId string) (*dto.SessionResponse, error) {
	view, err := s.sessions.Snapshot(ctx, userId)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(view, s.sessions.Presets()), nil
}

func (s *learnerService) SetMode(ctx context.Context, userId string, req *dto.SetModeRequest) (*dto.SessionResponse, error) {
	view, err := s.sessions.SetMode(ctx, userId, personalization.LearningMode(req.Mode))
	if err != nil {
		return nil, err
	}
	return toSessionResponse(view, s.sessions.Presets()), nil
}
