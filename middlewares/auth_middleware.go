package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"eventify.link/pkg/apperrors"
	"eventify.link/services"
)

// AuthMiddleware Authorization başlığındaki Bearer JWT'yi doğrular ve
// kullanıcı ID'sini c.Locals("userID") içine koyar.
func AuthMiddleware(authService services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "Authorization başlığı eksik")
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c, "geçersiz Authorization başlığı")
		}
		userID, err := authService.VerifyToken(token)
		if err != nil {
			return unauthorized(c, "geçersiz veya süresi dolmuş token")
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	err := apperrors.Unauthorized(message)
	return c.Status(err.StatusCode()).JSON(fiber.Map{
		"success": false,
		"error": fiber.Map{
			"message": err.Message,
			"path":    c.Path(),
		},
	})
}
