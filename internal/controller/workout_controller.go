package controller

import (
	"fitcoach-be/internal/dto"
	"fitcoach-be/internal/pkg/serverutils"
	"fitcoach-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWorkoutController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	GetActive(ctx *fiber.Ctx) error
	GetDetail(ctx *fiber.Ctx) error
}

type workoutController struct {
	service service.IWorkoutService
}

func NewWorkoutController(service service.IWorkoutService) IWorkoutController {
	return &workoutController{service: service}
}

func (c *workoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workouts")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Start)
	h.Get("/active", c.GetActive)
	h.Post("/:id/complete", c.Complete)
	h.Get("/:id", c.GetDetail)
}

func (c *workoutController) Start(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.StartWorkoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Start(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Workout started", res))
}

func (c *workoutController) Complete(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	workoutId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid workout ID"))
	}

	res, err := c.service.Complete(ctx.Context(), userId, workoutId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Workout completed", res))
}

func (c *workoutController) GetActive(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.service.GetActive(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("No active workout", nil))
	}
	return ctx.JSON(serverutils.SuccessResponse("Active workout", res))
}

func (c *workoutController) GetDetail(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	workoutId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid workout ID"))
	}

	res, err := c.service.GetDetail(ctx.Context(), userId, workoutId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Workout detail", res))
}
