package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/metrics"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/internal/pkg/serverutils"
	"neurolearn-be/internal/service"
	"neurolearn-be/pkg/pomodoro"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 512
	lookupTimeout  = 5 * time.Second
)

const (
	frameState    = "state"
	frameTick     = "tick"
	frameComplete = "complete"
	frameError    = "error"
)

var ErrUnknownCommand = errors.New("unknown command")

// PomodoroWsHandler streams the user's session timer over a websocket. Every
// open socket of a user watches the same countdown that the REST controls
// and quiz resolutions drive. Closing a socket only stops the stream.
type PomodoroWsHandler struct {
	service service.IPomodoroService
	logger  logger.ILogger
	metrics *metrics.Metrics
}

func NewPomodoroWsHandler(service service.IPomodoroService, log logger.ILogger, m *metrics.Metrics) *PomodoroWsHandler {
	return &PomodoroWsHandler{
		service: service,
		logger:  log,
		metrics: m,
	}
}

func (h *PomodoroWsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/pomodoro/ws", h.Upgrade, websocket.New(h.Serve))
}

// Upgrade rejects plain HTTP requests. The user id was put in Locals by the
// JWT middleware and is carried over to the websocket connection.
func (h *PomodoroWsHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if serverutils.UserID(c) == "" {
		return fiber.ErrUnauthorized
	}
	return c.Next()
}

// timerWatch follows the session timer of one user. The session can be
// rebuilt after idle eviction, so the runner is looked up again before every
// command and the watch moves along with it.
type timerWatch struct {
	runner  *pomodoro.Runner
	unwatch func()
}

func (w *timerWatch) follow(runner *pomodoro.Runner, fn func(pomodoro.Event)) {
	if w.runner == runner {
		return
	}
	w.close()
	w.runner = runner
	w.unwatch = runner.Watch(fn)
}

func (w *timerWatch) close() {
	if w.unwatch != nil {
		w.unwatch()
	}
	w.runner = nil
	w.unwatch = nil
}

func (h *PomodoroWsHandler) Serve(conn *websocket.Conn) {
	userId, _ := conn.Locals(serverutils.UserIDKey).(string)

	h.metrics.TimerConnected()
	defer h.metrics.TimerDisconnected()
	h.logger.Info("PomodoroWs", "Timer socket opened", map[string]interface{}{"user_id": userId})

	presets := h.service.Presets()
	baseCtx := h.service.BaseContext()

	// closed stops writes from watchers still in flight once Serve returns
	// and the connection goes back to the pool.
	var (
		writeMu sync.Mutex
		closed  bool
	)
	defer func() {
		writeMu.Lock()
		closed = true
		writeMu.Unlock()
	}()
	send := func(frame dto.PomodoroFrame) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if closed {
			return
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(frame); err != nil {
			h.logger.Debug("PomodoroWs", "Write failed", map[string]interface{}{"user_id": userId, "error": err.Error()})
		}
	}
	sendState := func(frameType string, state pomodoro.State, errMsg string) {
		send(dto.PomodoroFrame{Type: frameType, Timer: service.ToPomodoroStateResponse(state, presets), Error: errMsg})
	}

	watch := &timerWatch{}
	defer watch.close()
	onEvent := func(ev pomodoro.Event) {
		send(eventFrame(ev, presets))
	}

	runner, err := h.lookup(userId)
	if err != nil {
		send(dto.PomodoroFrame{Type: frameError, Error: err.Error()})
		return
	}
	watch.follow(runner, onEvent)
	sendState(frameState, runner.State(), "")

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var cmd dto.PomodoroCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("PomodoroWs", "Timer socket closed unexpectedly", map[string]interface{}{"user_id": userId, "error": err.Error()})
			}
			break
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		runner, err := h.lookup(userId)
		if err != nil {
			send(dto.PomodoroFrame{Type: frameError, Error: err.Error()})
			continue
		}
		watch.follow(runner, onEvent)

		// Changes are pushed to every watcher; a state frame answers reads
		// and rejected commands only.
		state, err := applyCommand(baseCtx, runner, cmd)
		if err != nil {
			sendState(frameError, state, err.Error())
			continue
		}
		if cmd.Action == "state" {
			sendState(frameState, state, "")
		}
	}

	h.logger.Info("PomodoroWs", "Timer socket closed", map[string]interface{}{"user_id": userId})
}

func (h *PomodoroWsHandler) lookup(userId string) (*pomodoro.Runner, error) {
	ctx, cancel := context.WithTimeout(h.service.BaseContext(), lookupTimeout)
	defer cancel()
	return h.service.Timer(ctx, userId)
}

func eventFrame(ev pomodoro.Event, presets pomodoro.Presets) dto.PomodoroFrame {
	frame := dto.PomodoroFrame{Timer: service.ToPomodoroStateResponse(ev.State, presets)}
	switch ev.Kind {
	case pomodoro.EventTick:
		frame.Type = frameTick
	case pomodoro.EventComplete:
		frame.Type = frameComplete
		if ev.Completion != nil {
			frame.Completed = string(ev.Completion.Mode)
		}
	default:
		frame.Type = frameState
	}
	return frame
}

// applyCommand runs one client command against the runner. A rejected command
// leaves the timer untouched and returns its current state.
func applyCommand(ctx context.Context, runner *pomodoro.Runner, cmd dto.PomodoroCommand) (pomodoro.State, error) {
	if err := serverutils.ValidateRequest(cmd); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return runner.State(), errors.New(fe.Message)
		}
		return runner.State(), err
	}

	switch cmd.Action {
	case "state":
		return runner.State(), nil
	case "start":
		return runner.Do(ctx, func(t *pomodoro.Timer) { t.Start() }), nil
	case "pause":
		return runner.Do(ctx, func(t *pomodoro.Timer) { t.Pause() }), nil
	case "toggle":
		return runner.Do(ctx, func(t *pomodoro.Timer) { t.Toggle() }), nil
	case "reset":
		return runner.Do(ctx, func(t *pomodoro.Timer) { t.Reset() }), nil
	case "mode":
		if cmd.Mode == "" {
			return runner.State(), errors.New("mode is required")
		}
		return runner.Do(ctx, func(t *pomodoro.Timer) { t.SetMode(pomodoro.Mode(cmd.Mode)) }), nil
	}
	return runner.State(), ErrUnknownCommand
}
