package controller

import (
	"errors"

	"neurolearn-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// mapServiceError turns service sentinels into HTTP errors for the error
// handler middleware.
func mapServiceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrVersionConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTransientPersistence):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}
	return err
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return nil
}
