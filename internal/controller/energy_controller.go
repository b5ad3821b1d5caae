package controller

import (
	"strconv"

	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/pkg/serverutils"
	"neurolearn-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEnergyController interface {
	RegisterRoutes(r fiber.Router)
	Log(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Suggestion(ctx *fiber.Ctx) error
}

type energyController struct {
	service service.IEnergyService
}

func NewEnergyController(service service.IEnergyService) IEnergyController {
	return &energyController{service: service}
}

func (c *energyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/energy")
	h.Post("", c.Log)
	h.Get("", c.List)
	h.Get("/suggestion", c.Suggestion)
}

func (c *energyController) Log(ctx *fiber.Ctx) error {
	var req dto.LogEnergyRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Log(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success log energy", res))
}

func (c *energyController) List(ctx *fiber.Ctx) error {
	days := ctx.QueryInt("days", service.DefaultEnergyWindowDays)

	res, err := c.service.List(ctx.Context(), serverutils.UserID(ctx), days)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get energy logs", res))
}

func (c *energyController) Suggestion(ctx *fiber.Ctx) error {
	raw := ctx.Query("slider")
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "slider is required")
	}
	slider, err := strconv.Atoi(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "slider must be a number")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get suggestion", c.service.Suggestion(slider)))
}
