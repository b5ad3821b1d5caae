package service

import (
	"context"
	"errors"
	"strings"

	"neurolearn-be/internal/dto"
	"neurolearn-be/pkg/tutor"
)

type ITutorService interface {
	Ask(ctx context.Context, req *dto.TutorAskRequest) (*dto.TutorAnswerResponse, error)
}

type tutorService struct{}

func NewTutorService() ITutorService {
	return &tutorService{}
}

func (s *tutorService) Ask(ctx context.Context, req *dto.TutorAskRequest) (*dto.TutorAnswerResponse, error) {
	answer, err := tutor.Explain(req.Prompt)
	if err != nil {
		if errors.Is(err, tutor.ErrEmptyPrompt) {
			return nil, ErrInvalidInput
		}
		return nil, err
	}

	helpers := make([]dto.TutorHelperResponse, 0, len(tutor.Helpers))
	for _, h := range tutor.Helpers {
		helpers = append(helpers, dto.TutorHelperResponse{Title: h.Title, Detail: h.Detail, Snippet: h.Snippet})
	}

	return &dto.TutorAnswerResponse{
		Prompt:  strings.TrimSpace(req.Prompt),
		Answer:  answer,
		Helpers: helpers,
	}, nil
}
