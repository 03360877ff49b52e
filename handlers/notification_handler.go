package handlers

import (
	"github.com/gofiber/fiber/v2"

	"eventify.link/pkg/apperrors"
	"eventify.link/services"
)

// NotificationHandler bildirim uçları için handler.
type NotificationHandler struct {
	service services.INotificationService
}

// NewNotificationHandler yeni bir NotificationHandler örneği oluşturur.
func NewNotificationHandler(service services.INotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GetNotifications GET /api/v1/notifications
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	notifications, err := h.service.GetNotifications(c.UserContext(), authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, notifications)
}

// GetNotificationByID GET /api/v1/notifications/:notificationId
func (h *NotificationHandler) GetNotificationByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("notificationId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz bildirim ID"))
	}
	notification, err := h.service.GetNotificationByID(c.UserContext(), uint(id), authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, notification)
}

// MarkRead PUT /api/v1/notifications/:notificationId
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("notificationId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz bildirim ID"))
	}
	var body struct {
		Read bool `json:"read"`
	}
	if err := c.BodyParser(&body); err != nil {
		return sendError(c, apperrors.BadRequest("geçersiz istek gövdesi"))
	}
	notification, err := h.service.MarkRead(c.UserContext(), uint(id), authUserID(c), body.Read)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, notification)
}
