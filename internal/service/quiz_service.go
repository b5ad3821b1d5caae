package service

import (
	"context"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/metrics"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/pkg/events"
	"neurolearn-be/pkg/personalization"
	"neurolearn-be/pkg/store"
)

type IQuizService interface {
	State(ctx context.Context, userId string) (*dto.QuizStateResponse, error)
	Answer(ctx context.Context, userId string, req *dto.QuizAnswerRequest) (*dto.QuizStateResponse, error)
	Advance(ctx context.Context, userId string) (*dto.QuizAdvanceResponse, error)
	Back(ctx context.Context, userId string) (*dto.QuizStateResponse, error)
	Reset(ctx context.Context, userId string) (*dto.QuizStateResponse, error)
}

type quizService struct {
	sessions  ISessionService
	publisher events.Publisher
	logger    logger.ILogger
	metrics   *metrics.Metrics
}

func NewQuizService(sessions ISessionService, publisher events.Publisher, log logger.ILogger, m *metrics.Metrics) IQuizService {
	return &quizService{
		sessions:  sessions,
		publisher: publisher,
		logger:    log,
		metrics:   m,
	}
}

func (s *quizService) read(ctx context.Context, userId string, fn func(q *personalization.Quiz)) (*dto.QuizStateResponse, error) {
	var res dto.QuizStateResponse
	err := s.sessions.Read(ctx, userId, func(session *store.LearnerSession) error {
		if fn != nil {
			fn(session.Quiz)
		}
		res = toQuizStateResponse(session.Quiz, session.Notes)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *quizService) State(ctx context.Context, userId string) (*dto.QuizStateResponse, error) {
	return s.read(ctx, userId, nil)
}

func (s *quizService) Answer(ctx context.Context, userId string, req *dto.QuizAnswerRequest) (*dto.QuizStateResponse, error) {
	key := personalization.QuestionKey(req.Key)
	return s.read(ctx, userId, func(q *personalization.Quiz) {
		q.SelectOption(key, req.Value)
	})
}

func (s *quizService) Back(ctx context.Context, userId string) (*dto.QuizStateResponse, error) {
	return s.read(ctx, userId, func(q *personalization.Quiz) {
		q.Back()
	})
}

func (s *quizService) Reset(ctx context.Context, userId string) (*dto.QuizStateResponse, error) {
	return s.read(ctx, userId, func(q *personalization.Quiz) {
		q.Reset()
	})
}

func (s *quizService) Advance(ctx context.Context, userId string) (*dto.QuizAdvanceResponse, error) {
	var (
		advanced   bool
		resolution *personalization.Resolution
		responses  personalization.Responses
		quizState  dto.QuizStateResponse
	)

	view, result, err := s.sessions.Update(ctx, userId, func(session *store.LearnerSession) (bool, error) {
		res, ok := session.Quiz.Advance(session.Profile)
		advanced = ok
		changed := false
		if res != nil {
			resolution = res
			responses = session.Quiz.Responses()
			changed = session.Apply(*res)
		}
		quizState = toQuizStateResponse(session.Quiz, session.Notes)
		return changed, nil
	})
	if err != nil {
		return nil, err
	}

	out := &dto.QuizAdvanceResponse{
		Quiz:     quizState,
		Advanced: advanced,
	}
	if resolution == nil {
		return out, nil
	}

	go s.watchPersistence(userId, result)

	s.metrics.QuizCompleted()
	answers := make(map[string]interface{}, len(responses))
	for key, value := range responses {
		answers[string(key)] = value
	}
	payload := map[string]interface{}{
		"user_id":   userId,
		"responses": answers,
		"notes":     resolution.DisplayNotes(),
	}
	if resolution.Mode != nil {
		payload["mode"] = string(*resolution.Mode)
	}
	publishEvent(s.publisher, s.logger, events.TypeQuizCompleted, payload)

	out.Session = toSessionResponse(view, s.sessions.Presets())
	return out, nil
}

func (s *quizService) watchPersistence(userId string, result <-chan error) {
	if err := <-result; err != nil {
		s.logger.Warn("QuizService", "Quiz preferences were not saved", map[string]interface{}{"user_id": userId, "error": err.Error()})
	}
}
