package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"eventify.link/handlers"
	"eventify.link/middlewares"
	"eventify.link/services"
)

// Handlers rota kaydı için gereken tüm handler'ları bir arada taşır.
// Bağımlılıklar main.go'da kurulur ve buraya hazır verilir.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Event        *handlers.EventHandler
	Invitation   *handlers.InvitationHandler
	Notification *handlers.NotificationHandler
	Feedback     *handlers.FeedbackHandler
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, h Handlers, authService services.IAuthService) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	registerAuthRoutes(app, h.Auth)
	registerAPIRoutes(app, h, authService)

	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// registerAuthRoutes /auth altındaki açık rotaları tanımlar.
// Webhook girişi de buradadır; Google kimlik doğrulaması göndermez.
func registerAuthRoutes(app *fiber.App, authHandler *handlers.AuthHandler) {
	authGroup := app.Group("/auth")

	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/webhook/calendar/", authHandler.CalendarWebhook)
}

// registerAPIRoutes /api/v1 altındaki JWT korumalı rotaları tanımlar.
func registerAPIRoutes(app *fiber.App, h Handlers, authService services.IAuthService) {
	api := app.Group("/api/v1")
	api.Use(middlewares.AuthMiddleware(authService))

	// --- Kullanıcılar ---
	api.Get("/users", h.User.GetUsers)
	api.Get("/users/:userId", h.User.GetUserByID)
	api.Put("/users/me", h.User.UpdateMe)

	// --- Etkinlikler ---
	api.Post("/events", h.Event.CreateEvent)
	api.Get("/events", h.Event.GetEvents)
	api.Get("/events/:eventId", h.Event.GetEventByID)
	api.Put("/events/:eventId", h.Event.UpdateEvent)
	api.Delete("/events/:eventId", h.Event.DeleteEvent)

	// --- Davetler ---
	api.Post("/invitations", h.Invitation.CreateInvitations)
	api.Put("/invitations", h.Invitation.UpdateInvitationSet)
	api.Get("/invitations", h.Invitation.GetInvitations)
	api.Get("/invitations/checkin-status", h.Invitation.CheckinStatus)
	api.Get("/invitations/:invitationId", h.Invitation.GetInvitationByID)
	api.Put("/invitations/:invitationId/respond", h.Invitation.RespondToInvitation)
	api.Post("/invitations/:invitationId/checkin", h.Invitation.CheckIn)
	api.Post("/invitations/:invitationId/remind", h.Invitation.Remind)
	api.Delete("/invitations/:invitationId", h.Invitation.DeleteInvitation)

	// --- Bildirimler ---
	api.Get("/notifications", h.Notification.GetNotifications)
	api.Get("/notifications/:notificationId", h.Notification.GetNotificationByID)
	api.Put("/notifications/:notificationId", h.Notification.MarkRead)

	// --- Geri Bildirimler ---
	api.Post("/feedbacks", h.Feedback.CreateFeedback)
	api.Get("/feedbacks", h.Feedback.GetFeedbacks)
	api.Get("/feedbacks/:feedbackId", h.Feedback.GetFeedbackByID)
	api.Delete("/feedbacks/:feedbackId", h.Feedback.DeleteFeedback)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"error": fiber.Map{
			"message": "kaynak bulunamadı",
			"path":    c.Path(),
		},
	})
}
