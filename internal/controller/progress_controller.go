package controller

import (
	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/pkg/serverutils"
	"neurolearn-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
	Track(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type progressController struct {
	service service.IProgressService
}

func NewProgressController(service service.IProgressService) IProgressController {
	return &progressController{service: service}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/progress")
	h.Post("", c.Track)
	h.Get("", c.List)
}

func (c *progressController) Track(ctx *fiber.Ctx) error {
	var req dto.TrackProgressRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Track(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success track progress", res))
}

func (c *progressController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get progress", res))
}
