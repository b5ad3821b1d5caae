package controller

import (
	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/pkg/serverutils"
	"neurolearn-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILearnerController interface {
	RegisterRoutes(r fiber.Router)
	GetPreferences(ctx *fiber.Ctx) error
	UpdatePreferences(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	SetMode(ctx *fiber.Ctx) error
}

type learnerController struct {
	service service.ILearnerService
}

func NewLearnerController(service service.ILearnerService) ILearnerController {
	return &learnerController{service: service}
}

func (c *learnerController) RegisterRoutes(r fiber.Router) {
	r.Get("/preferences", c.GetPreferences)
	r.Put("/preferences", c.UpdatePreferences)
	r.Get("/session", c.GetSession)
	r.Put("/session/mode", c.SetMode)
}

func (c *learnerController) GetPreferences(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.service.GetPreferences(ctx.Context(), userId)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get preferences", res))
}

func (c *learnerController) UpdatePreferences(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.UpdatePreferenceRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdatePreferences(ctx.Context(), userId, &req)
	if err != nil {
		return mapServiceError(err)
	}

	message := "Success update preferences"
	if res.PersistError != "" {
		message = "Preferences updated, saving failed"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *learnerController) GetSession(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.service.GetSession(ctx.Context(), userId)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *learnerController) SetMode(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.SetModeRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetMode(ctx.Context(), userId, &req)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set learning mode", res))
}
