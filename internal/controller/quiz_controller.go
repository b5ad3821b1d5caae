package controller

import (
	"neurolearn-be/internal/dto"
	"neurolearn-be/internal/pkg/serverutils"
	"neurolearn-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Advance(ctx *fiber.Ctx) error
	Back(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type quizController struct {
	service service.IQuizService
}

func NewQuizController(service service.IQuizService) IQuizController {
	return &quizController{service: service}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quiz")
	h.Get("", c.State)
	h.Post("/answer", c.Answer)
	h.Post("/advance", c.Advance)
	h.Post("/back", c.Back)
	h.Post("/reset", c.Reset)
}

func (c *quizController) State(ctx *fiber.Ctx) error {
	res, err := c.service.State(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get quiz", res))
}

func (c *quizController) Answer(ctx *fiber.Ctx) error {
	var req dto.QuizAnswerRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Answer(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success record answer", res))
}

func (c *quizController) Advance(ctx *fiber.Ctx) error {
	res, err := c.service.Advance(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}

	message := "Success advance quiz"
	if !res.Advanced && res.Quiz.Complete {
		message = "Quiz already complete, reset to retake it"
	} else if !res.Advanced {
		message = "Answer the current question first"
	} else if res.Session != nil {
		message = "Quiz complete, dashboard tuned"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *quizController) Back(ctx *fiber.Ctx) error {
	res, err := c.service.Back(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success step back", res))
}

func (c *quizController) Reset(ctx *fiber.Ctx) error {
	res, err := c.service.Reset(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reset quiz", res))
}
