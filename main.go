package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"eventify.link/configs"
	"eventify.link/configs/configslog"
	"eventify.link/database"
	"eventify.link/handlers"
	"eventify.link/repositories"
	"eventify.link/routes"
	"eventify.link/services"
)

func main() {
	configslog.InitLogger()
	defer configslog.Sync()

	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg.DatabaseDSN)
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}
	database.Initialize(db, true)

	jwtExpiry, err := time.ParseDuration(cfg.JWTExpiry)
	if err != nil {
		configslog.SLog.Warnw("JWT_EXPIRY çözümlenemedi, 24h kullanılacak", "value", cfg.JWTExpiry)
		jwtExpiry = 24 * time.Hour
	}

	// --- Repository katmanı ---
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	eventMediaRepo := repositories.NewEventMediaRepository(db)
	invitationRepo := repositories.NewInvitationRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)

	// --- Servis katmanı ---
	oauthConfig := configs.GoogleOAuthConfig(cfg)
	userService := services.NewUserService(userRepo)
	tokenService := services.NewTokenService(tokenRepo)
	mailService := services.NewMailService(cfg)
	notificationService := services.NewNotificationService(notificationRepo)
	calendarService := services.NewCalendarService(oauthConfig, tokenService, cfg.WebhookBaseURL)
	eventService := services.NewEventService(eventRepo, eventMediaRepo, calendarService)
	invitationService := services.NewInvitationService(
		invitationRepo,
		userService,
		eventService,
		notificationService,
		mailService,
		calendarService,
	)
	feedbackService := services.NewFeedbackService(feedbackRepo, eventService)
	webhookService := services.NewWebhookService(eventService, userService, invitationService, calendarService)
	authService := services.NewAuthService(oauthConfig, userService, tokenService, cfg.JWTSecret, jwtExpiry)

	// --- Handler katmanı ---
	h := routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService, webhookService),
		User:         handlers.NewUserHandler(userService),
		Event:        handlers.NewEventHandler(eventService),
		Invitation:   handlers.NewInvitationHandler(invitationService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Feedback:     handlers.NewFeedbackHandler(feedbackService),
	}

	app := fiber.New(fiber.Config{
		AppName: "eventify",
	})
	routes.SetupRoutes(app, h, authService)

	configslog.SLog.Infow("Sunucu başlatılıyor", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
