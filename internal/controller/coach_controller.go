package controller

import (
	"context"
	"encoding/json"
	"os"

	"fitcoach-be/internal/dto"
	"fitcoach-be/internal/pkg/logger"
	"fitcoach-be/internal/pkg/serverutils"
	"fitcoach-be/internal/service"
	internalWS "fitcoach-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ICoachController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	Classify(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type coachController struct {
	service service.ICoachService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewCoachController(service service.ICoachService, hub *internalWS.Hub, log logger.ILogger) ICoachController {
	return &coachController{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

func (c *coachController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/coach")
	h.Get("/ws", c.ServeWs) // authenticates itself; JWT middleware can't read query tokens

	h.Use(serverutils.JwtMiddleware)
	h.Post("/message", c.SendMessage)
	h.Post("/classify", c.Classify)
	h.Get("/history", c.GetHistory)
	h.Delete("/session/:workout_id", c.ClearSession)
}

func (c *coachController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.SendCoachMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Coach reply", res))
}

func (c *coachController) Classify(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.ClassifyMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Classify(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Classification", res))
}

func (c *coachController) GetHistory(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	limit := ctx.QueryInt("limit", 50)
	res, err := c.service.GetHistory(ctx.Context(), userId, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *coachController) ClearSession(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	workoutId, err := uuid.Parse(ctx.Params("workout_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid workout ID"))
	}

	if err := c.service.ClearSession(ctx.Context(), userId, workoutId); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logging session cleared", nil))
}

// ServeWs upgrades to a websocket carrying streamed coach replies plus
// server pushes (program ready, PR alerts).
func (c *coachController) ServeWs(ctx *fiber.Ctx) error {
	// Browsers can't set headers on websocket handshakes, so the token
	// arrives as a query param; tooling still uses the Bearer header.
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.logger.Warn("CoachController", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	userIdStr, ok := claims["user_id"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("CoachController", "Starting WebSocket session", map[string]interface{}{"user_id": userId})
			internalWS.ServeWs(c.hub, conn, userId, c.handleInbound)
			c.logger.Info("CoachController", "WebSocket session ended", map[string]interface{}{"user_id": userId})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}

// handleInbound runs one coach turn for a chat message received over the
// socket, streaming chunks back on the same connection.
func (c *coachController) handleInbound(client *internalWS.Client, data []byte) {
	var req dto.SendCoachMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		client.Enqueue("error", map[string]string{"message": "Invalid message payload"})
		return
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		client.Enqueue("error", map[string]string{"message": err.Error()})
		return
	}

	res, err := c.service.SendMessageStream(context.Background(), client.UserID, &req, func(chunk string) {
		client.Enqueue(internalWS.PushCoachChunk, map[string]string{"text": chunk})
	})
	if err != nil {
		c.logger.Error("CoachController", "Streamed turn failed", map[string]interface{}{
			"user_id": client.UserID,
			"error":   err.Error(),
		})
		client.Enqueue("error", map[string]string{"message": "Coach is unavailable right now"})
		return
	}

	client.Enqueue(internalWS.PushCoachReply, res)
}

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		if uid, ok := ctx.Locals("user_id").(uuid.UUID); ok {
			return uid, nil
		}
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uuid.Parse(userIdStr)
}
