package controller

import (
	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/pkg/serverutils"
	"neurolearn-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITutorController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
}

type tutorController struct {
	service service.ITutorService
}

func NewTutorController(service service.ITutorService) ITutorController {
	return &tutorController{service: service}
}

func (c *tutorController) RegisterRoutes(r fiber.Router) {
	r.Post("/tutor/ask", c.Ask)
}

func (c *tutorController) Ask(ctx *fiber.Ctx) error {
	var req dto.TutorAskRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Ask(ctx.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success ask tutor", res))
}
