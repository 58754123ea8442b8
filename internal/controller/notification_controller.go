package controller

import (
	"rental-asistente-be/internal/pkg/serverutils"
	"rental-asistente-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type notificationController struct {
	notificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) INotificationController {
	return &notificationController{
		notificationService: notificationService,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notificacion/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
}

func (c *notificationController) List(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return serverutils.ErrIdentityRequired
	}

	res, err := c.notificationService.GetNotifications(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get notifications", res))
}
