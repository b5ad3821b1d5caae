package controller

import (
	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/pkg/serverutils"
	"neurolearn-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Sync(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
}

type profileController struct {
	service service.IProfileService
}

func NewProfileController(service service.IProfileService) IProfileController {
	return &profileController{service: service}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile")
	h.Get("", c.Get)
	h.Post("/sync", c.Sync)
}

func (c *profileController) Sync(ctx *fiber.Ctx) error {
	var req dto.SyncProfileRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Sync(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success sync profile", res))
}

func (c *profileController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}
