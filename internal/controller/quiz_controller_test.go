package controller

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"neurolearn-be/internal/dto"
	"neurolearn-be/pkg/personalization"
	"neurolearn-be/pkg/preference"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuizService runs a real quiz without a session store behind it.
type fakeQuizService struct {
	mu      sync.Mutex
	quiz    *personalization.Quiz
	answers int
}

func newFakeQuizService() *fakeQuizService {
	return &fakeQuizService{quiz: personalization.NewQuiz()}
}

func (f *fakeQuizService) state() *dto.QuizStateResponse {
	responses := make(map[string]string)
	for k, v := range f.quiz.Responses() {
		responses[string(k)] = v
	}
	return &dto.QuizStateResponse{
		Step:      f.quiz.Step(),
		Total:     f.quiz.QuestionCount(),
		Complete:  f.quiz.Complete(),
		Progress:  f.quiz.ProgressFraction(),
		Current:   dto.QuizQuestion{Key: string(f.quiz.Current().Key)},
		Responses: responses,
	}
}

func (f *fakeQuizService) State(ctx context.Context, userId string) (*dto.QuizStateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state(), nil
}

func (f *fakeQuizService) Answer(ctx context.Context, userId string, req *dto.QuizAnswerRequest) (*dto.QuizStateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers++
	f.quiz.SelectOption(personalization.QuestionKey(req.Key), req.Value)
	return f.state(), nil
}

func (f *fakeQuizService) Advance(ctx context.Context, userId string) (*dto.QuizAdvanceResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.quiz.Advance(preference.Defaults(userId))
	out := &dto.QuizAdvanceResponse{Advanced: ok}
	if res != nil {
		out.Session = &dto.SessionResponse{Notes: res.DisplayNotes()}
	}
	out.Quiz = *f.state()
	return out, nil
}

func (f *fakeQuizService) Back(ctx context.Context, userId string) (*dto.QuizStateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quiz.Back()
	return f.state(), nil
}

func (f *fakeQuizService) Reset(ctx context.Context, userId string) (*dto.QuizStateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quiz.Reset()
	return f.state(), nil
}

func decodeAdvance(t *testing.T, data json.RawMessage) dto.QuizAdvanceResponse {
	t.Helper()
	var res dto.QuizAdvanceResponse
	require.NoError(t, json.Unmarshal(data, &res))
	return res
}

func TestQuizController_AnswerValidation(t *testing.T) {
	svc := newFakeQuizService()
	app := newTestApp(NewQuizController(svc))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"key":`},
		{"unknown question", `{"key":"mood","value":"calm"}`},
		{"missing value", `{"key":"sensory"}`},
		{"empty body", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, app, fiber.MethodPost, "/api/quiz/answer", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, code)
			assert.False(t, body.Success)
		})
	}
	assert.Zero(t, svc.answers, "rejected answers never reach the service")
}

func TestQuizController_Flow(t *testing.T) {
	svc := newFakeQuizService()
	app := newTestApp(NewQuizController(svc))

	code, body := do(t, app, fiber.MethodPost, "/api/quiz/advance", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Answer the current question first", body.Message)
	assert.False(t, decodeAdvance(t, body.Data).Advanced)

	answers := []string{
		`{"key":"sensory","value":"lowStim"}`,
		`{"key":"attention","value":"micro"}`,
		`{"key":"intake","value":"visual"}`,
	}
	var last dto.QuizAdvanceResponse
	for _, answer := range answers {
		code, _ = do(t, app, fiber.MethodPost, "/api/quiz/answer", answer)
		require.Equal(t, fiber.StatusOK, code)
		code, body = do(t, app, fiber.MethodPost, "/api/quiz/advance", "")
		require.Equal(t, fiber.StatusOK, code)
		last = decodeAdvance(t, body.Data)
		assert.True(t, last.Advanced)
	}
	assert.Equal(t, "Quiz complete, dashboard tuned", body.Message)
	assert.True(t, last.Quiz.Complete)
	require.NotNil(t, last.Session)
	assert.Contains(t, last.Session.Notes, "Prioritising visual storyboard mode.")

	t.Run("advancing a complete quiz is a no-op", func(t *testing.T) {
		code, body := do(t, app, fiber.MethodPost, "/api/quiz/advance", "")
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "Quiz already complete, reset to retake it", body.Message)

		res := decodeAdvance(t, body.Data)
		assert.False(t, res.Advanced)
		assert.Nil(t, res.Session)
		assert.True(t, res.Quiz.Complete)
		assert.Equal(t, 2, res.Quiz.Step)
	})

	t.Run("reset allows a retake", func(t *testing.T) {
		code, body := do(t, app, fiber.MethodPost, "/api/quiz/reset", "")
		assert.Equal(t, fiber.StatusOK, code)

		var state dto.QuizStateResponse
		require.NoError(t, json.Unmarshal(body.Data, &state))
		assert.False(t, state.Complete)
		assert.Zero(t, state.Step)
		assert.Empty(t, state.Responses)
	})
}
