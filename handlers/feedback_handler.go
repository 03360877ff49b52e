package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"eventify.link/pkg/apperrors"
	"eventify.link/pkg/queryparams"
	"eventify.link/services"
)

// FeedbackHandler geri bildirim uçları için handler.
type FeedbackHandler struct {
	service services.IFeedbackService
}

// NewFeedbackHandler yeni bir FeedbackHandler örneği oluşturur.
func NewFeedbackHandler(service services.IFeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type createFeedbackBody struct {
	EventID uint   `json:"eventId"`
	Comment string `json:"comment"`
}

// CreateFeedback POST /api/v1/feedbacks
func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var body createFeedbackBody
	if err := c.BodyParser(&body); err != nil {
		return sendError(c, apperrors.BadRequest("geçersiz istek gövdesi"))
	}
	if body.EventID == 0 {
		return sendError(c, apperrors.BadRequest("eventId alanı zorunludur"))
	}
	if strings.TrimSpace(body.Comment) == "" {
		return sendError(c, apperrors.BadRequest("comment alanı zorunludur"))
	}
	feedback, err := h.service.CreateFeedback(c.UserContext(), body.EventID, body.Comment, authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, feedback)
}

// GetFeedbacks GET /api/v1/feedbacks
func (h *FeedbackHandler) GetFeedbacks(c *fiber.Ctx) error {
	params := queryparams.Parse(c.Queries())
	feedbacks, err := h.service.GetFeedbacks(c.UserContext(), params)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, feedbacks)
}

// GetFeedbackByID GET /api/v1/feedbacks/:feedbackId
func (h *FeedbackHandler) GetFeedbackByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("feedbackId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz geri bildirim ID"))
	}
	feedback, err := h.service.GetFeedbackByID(c.UserContext(), uint(id))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, feedback)
}

// DeleteFeedback DELETE /api/v1/feedbacks/:feedbackId
func (h *FeedbackHandler) DeleteFeedback(c *fiber.Ctx) error {
	id, err := c.ParamsInt("feedbackId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz geri bildirim ID"))
	}
	if err := h.service.DeleteFeedback(c.UserContext(), uint(id), authUserID(c)); err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, fiber.Map{"deleted": true})
}
