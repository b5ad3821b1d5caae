package controller

import (
	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/pkg/serverutils"
	"neurolearn-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPomodoroController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	Pause(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	SetMode(ctx *fiber.Ctx) error
}

type pomodoroController struct {
	service service.IPomodoroService
}

func NewPomodoroController(service service.IPomodoroService) IPomodoroController {
	return &pomodoroController{service: service}
}

func (c *pomodoroController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pomodoro")
	h.Get("", c.State)
	h.Post("/start", c.Start)
	h.Post("/pause", c.Pause)
	h.Post("/reset", c.Reset)
	h.Put("/mode", c.SetMode)
}

func (c *pomodoroController) State(ctx *fiber.Ctx) error {
	res, err := c.service.State(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get timer", res))
}

func (c *pomodoroController) Start(ctx *fiber.Ctx) error {
	res, err := c.service.Start(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Timer started", res))
}

func (c *pomodoroController) Pause(ctx *fiber.Ctx) error {
	res, err := c.service.Pause(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Timer paused", res))
}

func (c *pomodoroController) Reset(ctx *fiber.Ctx) error {
	res, err := c.service.Reset(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Timer reset", res))
}

func (c *pomodoroController) SetMode(ctx *fiber.Ctx) error {
	var req dto.PomodoroModeRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetMode(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set timer mode", res))
}
