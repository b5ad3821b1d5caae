package controller

import (
	"neurolearn-be/internal/pkg/serverutils"
	"neurolearn-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRoutineController interface {
	RegisterRoutes(r fiber.Router)
	View(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
}

type routineController struct {
	service service.IRoutineService
}

func NewRoutineController(service service.IRoutineService) IRoutineController {
	return &routineController{service: service}
}

func (c *routineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/routines")
	h.Get("", c.View)
	h.Put("/:block/:index", c.Toggle)
}

func (c *routineController) View(ctx *fiber.Ctx) error {
	res, err := c.service.View(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get routines", res))
}

func (c *routineController) Toggle(ctx *fiber.Ctx) error {
	index, err := ctx.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid step index")
	}

	res, err := c.service.Toggle(ctx.Context(), serverutils.UserID(ctx), ctx.Params("block"), index)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle routine step", res))
}
