package controller

import (
	"rental-asistente-be/internal/dto"
	"rental-asistente-be/internal/pkg/serverutils"
	"rental-asistente-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/asistente/v1")
	h.Use(serverutils.OptionalJwtMiddleware) // anonymous browsing allowed
	h.Post("mensaje", c.SendMessage)
}

func (c *assistantController) SendMessage(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)

	// Anonymous clients keep their dialogue via the session header; logged-in
	// users fall back to their identity when the header is absent.
	sessionId := ctx.Get("X-Session-Id")
	if sessionId == "" {
		sessionId = userId
	}
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.SendMessage(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}
