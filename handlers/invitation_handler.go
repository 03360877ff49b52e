package handlers

import (
	"github.com/gofiber/fiber/v2"

	"eventify.link/models"
	"eventify.link/pkg/apperrors"
	"eventify.link/pkg/queryparams"
	"eventify.link/services"
)

// InvitationHandler davet uçları için handler.
type InvitationHandler struct {
	service services.IInvitationService
}

// NewInvitationHandler yeni bir InvitationHandler örneği oluşturur.
func NewInvitationHandler(service services.IInvitationService) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// CreateInvitations POST /api/v1/invitations
func (h *InvitationHandler) CreateInvitations(c *fiber.Ctx) error {
	var input services.InvitationInput
	if err := c.BodyParser(&input); err != nil {
		return sendError(c, apperrors.BadRequest("geçersiz istek gövdesi"))
	}
	invitations, err := h.service.CreateInvitations(c.UserContext(), input, authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, invitations)
}

// UpdateInvitationSet PUT /api/v1/invitations/:invitationId
// Gövdedeki userIds kümesi etkinliğin istenen davetli kümesidir.
func (h *InvitationHandler) UpdateInvitationSet(c *fiber.Ctx) error {
	var input services.InvitationInput
	if err := c.BodyParser(&input); err != nil {
		return sendError(c, apperrors.BadRequest("geçersiz istek gövdesi"))
	}
	invitations, err := h.service.UpdateInvitationSet(c.UserContext(), input, authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, invitations)
}

// GetInvitations GET /api/v1/invitations
func (h *InvitationHandler) GetInvitations(c *fiber.Ctx) error {
	params := queryparams.Parse(c.Queries())
	invitations, err := h.service.GetInvitations(c.UserContext(), params, authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, invitations)
}

// GetInvitationByID GET /api/v1/invitations/:invitationId
func (h *InvitationHandler) GetInvitationByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("invitationId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz davet ID"))
	}
	invitation, err := h.service.GetInvitationByID(c.UserContext(), uint(id), authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, invitation)
}

// RespondToInvitation POST /api/v1/invitations/:invitationId/respond
func (h *InvitationHandler) RespondToInvitation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("invitationId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz davet ID"))
	}
	var body struct {
		Status models.InvitationStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return sendError(c, apperrors.BadRequest("geçersiz istek gövdesi"))
	}
	switch body.Status {
	case models.InvitationStatusAccepted, models.InvitationStatusRejected,
		models.InvitationStatusTentative, models.InvitationStatusPending:
	default:
		return sendError(c, apperrors.BadRequest("geçersiz davet durumu"))
	}
	invitation, err := h.service.RespondToInvitation(c.UserContext(), uint(id), body.Status, authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, invitation)
}

// CheckIn POST /api/v1/invitations/:invitationId/checkin
func (h *InvitationHandler) CheckIn(c *fiber.Ctx) error {
	id, err := c.ParamsInt("invitationId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz davet ID"))
	}
	invitation, err := h.service.CheckIn(c.UserContext(), uint(id), authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, invitation)
}

// Remind POST /api/v1/invitations/:invitationId/remind
func (h *InvitationHandler) Remind(c *fiber.Ctx) error {
	id, err := c.ParamsInt("invitationId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz davet ID"))
	}
	if err := h.service.Remind(c.UserContext(), uint(id)); err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, nil)
}

// DeleteInvitation DELETE /api/v1/invitations/:invitationId
func (h *InvitationHandler) DeleteInvitation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("invitationId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz davet ID"))
	}
	if err := h.service.DeleteInvitation(c.UserContext(), uint(id)); err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, nil)
}

// CheckinStatus GET /api/v1/invitations/checkin-status?eventId=
func (h *InvitationHandler) CheckinStatus(c *fiber.Ctx) error {
	eventID := c.QueryInt("eventId")
	if eventID <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz etkinlik ID"))
	}
	checkedIn, err := h.service.CheckUserCheckin(c.UserContext(), authUserID(c), uint(eventID))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, fiber.Map{"checkedIn": checkedIn})
}

// authUserID middleware'in koyduğu kimliği okur.
func authUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
