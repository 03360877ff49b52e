package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"eventify.link/configs/configslog"
	"eventify.link/pkg/apperrors"
	"eventify.link/services"
)

// AuthHandler Google OAuth akışı ve takvim webhook girişi için handler.
type AuthHandler struct {
	authService    services.IAuthService
	webhookService services.IWebhookService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler(authService services.IAuthService, webhookService services.IWebhookService) *AuthHandler {
	return &AuthHandler{authService: authService, webhookService: webhookService}
}

// GoogleLogin GET /auth/google/login - kullanıcıyı Google onay ekranına yönlendirir.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	state := uuid.NewString()
	return c.Redirect(h.authService.LoginURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback GET /auth/google/callback - OAuth kodunu JWT'ye çevirir.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return sendError(c, apperrors.BadRequest("code parametresi eksik"))
	}
	user, token, err := h.authService.HandleCallback(c.UserContext(), code)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, fiber.Map{
		"user":  user,
		"token": token,
	})
}

// CalendarWebhook POST /auth/webhook/calendar/ - Google Calendar push bildirimi girişi.
// Google teslimatın başarısını yalnızca HTTP durum koduna bakarak değerlendirir,
// bu yüzden her koşulda 200 döner.
func (h *AuthHandler) CalendarWebhook(c *fiber.Ctx) error {
	resourceState := c.Get("X-Goog-Resource-State")
	if resourceState == "sync" {
		return c.SendStatus(fiber.StatusOK)
	}

	calendarEventID := c.Query("eventId")
	if calendarEventID == "" {
		configslog.SLog.Warnw("Webhook bildirimi eventId parametresi olmadan geldi",
			"resource_state", resourceState)
		return c.SendStatus(fiber.StatusOK)
	}

	h.webhookService.HandleCalendarWebhookEvent(c.UserContext(), calendarEventID)
	return c.SendStatus(fiber.StatusOK)
}
