package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"eventify.link/configs/configslog"
)

// Config uygulamanın tüm ortam yapılandırmasını taşır.
type Config struct {
	AppEnv string
	Port   string

	// Veritabanı
	DatabaseDSN string

	// JWT
	JWTSecret string
	JWTExpiry string // ör: "24h"

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// Google OAuth + Calendar
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// Takvim webhook'larının geri çağrı adresi (public URL)
	WebhookBaseURL string
}

// LoadConfig .env dosyasını (varsa) ve ortam değişkenlerini okur.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak")
	}

	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "3000"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "host=localhost user=eventify password=eventify dbname=eventify port=5432 sslmode=disable TimeZone=UTC"),
		JWTSecret:          getEnv("JWT_SECRET", "degistir-beni"),
		JWTExpiry:          getEnv("JWT_EXPIRY", "24h"),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUser:           getEnv("SMTP_USER", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:           getEnv("SMTP_FROM", getEnv("SMTP_USER", "")),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:3000/auth/google/callback"),
		WebhookBaseURL:     getEnv("WEBHOOK_BASE_URL", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
