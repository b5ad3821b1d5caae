package controller

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/service"
	"neurolearn-be/pkg/pomodoro"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePomodoroService drives one real runner for every caller.
type fakePomodoroService struct {
	ctx      context.Context
	runner   *pomodoro.Runner
	setModes int
}

func newFakePomodoroService(ctx context.Context) *fakePomodoroService {
	return &fakePomodoroService{
		ctx:    ctx,
		runner: pomodoro.NewRunner(pomodoro.NewTimer(pomodoro.DefaultPresets), pomodoro.WithInterval(time.Hour)),
	}
}

func (f *fakePomodoroService) do(fn func(t *pomodoro.Timer)) (*dto.PomodoroStateResponse, error) {
	res := service.ToPomodoroStateResponse(f.runner.Do(f.ctx, fn), pomodoro.DefaultPresets)
	return &res, nil
}

func (f *fakePomodoroService) State(ctx context.Context, userId string) (*dto.PomodoroSummaryResponse, error) {
	return &dto.PomodoroSummaryResponse{Timer: service.ToPomodoroStateResponse(f.runner.State(), pomodoro.DefaultPresets)}, nil
}
func (f *fakePomodoroService) Start(ctx context.Context, userId string) (*dto.PomodoroStateResponse, error) {
	return f.do(func(t *pomodoro.Timer) { t.Start() })
}
func (f *fakePomodoroService) Pause(ctx context.Context, userId string) (*dto.PomodoroStateResponse, error) {
	return f.do(func(t *pomodoro.Timer) { t.Pause() })
}
func (f *fakePomodoroService) Reset(ctx context.Context, userId string) (*dto.PomodoroStateResponse, error) {
	return f.do(func(t *pomodoro.Timer) { t.Reset() })
}
func (f *fakePomodoroService) SetMode(ctx context.Context, userId string, req *dto.PomodoroModeRequest) (*dto.PomodoroStateResponse, error) {
	f.setModes++
	return f.do(func(t *pomodoro.Timer) { t.SetMode(pomodoro.Mode(req.Mode)) })
}
func (f *fakePomodoroService) RecordCompletion(ctx context.Context, userId string, c pomodoro.Completion) error {
	return nil
}
func (f *fakePomodoroService) Timer(ctx context.Context, userId string) (*pomodoro.Runner, error) {
	return f.runner, nil
}
func (f *fakePomodoroService) BaseContext() context.Context { return f.ctx }
func (f *fakePomodoroService) Presets() pomodoro.Presets    { return pomodoro.DefaultPresets }

func decodeTimer(t *testing.T, data json.RawMessage) dto.PomodoroStateResponse {
	t.Helper()
	var res dto.PomodoroStateResponse
	require.NoError(t, json.Unmarshal(data, &res))
	return res
}

func TestPomodoroController_SetModeValidation(t *testing.T) {
	svc := newFakePomodoroService(t.Context())
	defer svc.runner.Stop()
	app := newTestApp(NewPomodoroController(svc))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"mode"`},
		{"missing mode", `{}`},
		{"unknown mode", `{"mode":"nap"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, app, fiber.MethodPut, "/api/pomodoro/mode", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, code)
			assert.False(t, body.Success)
		})
	}
	assert.Zero(t, svc.setModes)
}

func TestPomodoroController_Controls(t *testing.T) {
	svc := newFakePomodoroService(t.Context())
	defer svc.runner.Stop()
	app := newTestApp(NewPomodoroController(svc))

	code, body := do(t, app, fiber.MethodGet, "/api/pomodoro", "")
	assert.Equal(t, fiber.StatusOK, code)
	var summary dto.PomodoroSummaryResponse
	require.NoError(t, json.Unmarshal(body.Data, &summary))
	assert.Equal(t, "25:00", summary.Timer.Display)
	assert.Equal(t, 25, summary.Timer.FocusMinutes)
	assert.Equal(t, 5, summary.Timer.BreakMinutes)

	code, body = do(t, app, fiber.MethodPost, "/api/pomodoro/start", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, decodeTimer(t, body.Data).Running)

	t.Run("mode switch while running reloads the duration", func(t *testing.T) {
		code, body := do(t, app, fiber.MethodPut, "/api/pomodoro/mode", `{"mode":"break"}`)
		assert.Equal(t, fiber.StatusOK, code)

		state := decodeTimer(t, body.Data)
		assert.Equal(t, "break", state.Mode)
		assert.Equal(t, "05:00", state.Display)
		assert.True(t, state.Running)
	})

	code, body = do(t, app, fiber.MethodPost, "/api/pomodoro/reset", "")
	assert.Equal(t, fiber.StatusOK, code)
	state := decodeTimer(t, body.Data)
	assert.False(t, state.Running)
	assert.Equal(t, 300, state.SecondsRemaining)
}
