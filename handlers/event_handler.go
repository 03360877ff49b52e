package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"eventify.link/models"
	"eventify.link/pkg/apperrors"
	"eventify.link/pkg/queryparams"
	"eventify.link/services"
)

// EventHandler etkinlik uçları için handler.
type EventHandler struct {
	service services.IEventService
}

// NewEventHandler yeni bir EventHandler örneği oluşturur.
func NewEventHandler(service services.IEventService) *EventHandler {
	return &EventHandler{service: service}
}

type createEventBody struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// CreateEvent POST /api/v1/events
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var body createEventBody
	if err := c.BodyParser(&body); err != nil {
		return sendError(c, apperrors.BadRequest("geçersiz istek gövdesi"))
	}
	event := &models.Event{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
	}
	created, err := h.service.CreateEvent(c.UserContext(), event, authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, created)
}

// UpdateEvent PUT /api/v1/events/:eventId
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("eventId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz etkinlik ID"))
	}
	// Güncelleme organizatöre özgüdür; önce görünürlük/sahiplik denetlenir.
	event, err := h.service.GetEventByID(c.UserContext(), uint(id), authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	if event.UserID != authUserID(c) {
		return sendError(c, apperrors.Forbidden("yalnızca organizatör etkinliği güncelleyebilir"))
	}
	var patch services.EventPatch
	if err := c.BodyParser(&patch); err != nil {
		return sendError(c, apperrors.BadRequest("geçersiz istek gövdesi"))
	}
	updated, err := h.service.UpdateEvent(c.UserContext(), uint(id), patch)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, updated)
}

// GetEvents GET /api/v1/events
func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	params := queryparams.Parse(c.Queries())
	events, err := h.service.GetEvents(c.UserContext(), params, authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, events)
}

// GetEventByID GET /api/v1/events/:eventId
func (h *EventHandler) GetEventByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("eventId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz etkinlik ID"))
	}
	event, err := h.service.GetEventByID(c.UserContext(), uint(id), authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, event)
}

// DeleteEvent DELETE /api/v1/events/:eventId
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("eventId")
	if err != nil || id <= 0 {
		return sendError(c, apperrors.BadRequest("geçersiz etkinlik ID"))
	}
	event, err := h.service.GetEventByID(c.UserContext(), uint(id), authUserID(c))
	if err != nil {
		return sendError(c, err)
	}
	if event.UserID != authUserID(c) {
		return sendError(c, apperrors.Forbidden("yalnızca organizatör etkinliği silebilir"))
	}
	if err := h.service.DeleteEvent(c.UserContext(), uint(id)); err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, nil)
}
