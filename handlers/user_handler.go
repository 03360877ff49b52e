package handlers

import (
	"github.com/gofiber/fiber/v2"

	"eventify.link/pkg/apperrors"
	"eventify.link/services"
)

// UserHandler kullanıcı uçları için handler.
type UserHandler struct {
	service services.IUserService
}

// NewUserHandler yeni bir UserHandler örneği oluşturur.
func NewUserHandler(service services.IUserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetUsers GET /api/v1/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetUsers(c.UserContext())
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, users)
}

// GetUserByID GET /api/v1/users/:userId
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz kullanıcı ID"))
	}
	user, err := h.service.GetUserByID(c.UserContext(), uint(id))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, user)
}

// UpdateMe PUT /api/v1/users/me
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var patch services.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return sendError(c, apperrors.BadRequest("geçersiz istek gövdesi"))
	}
	user, err := h.service.UpdateUser(c.UserContext(), authUserID(c), patch)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, user)
}
