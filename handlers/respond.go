package handlers

import (
	"github.com/gofiber/fiber/v2"

	"eventify.link/pkg/apperrors"
)

// Tüm API uçları tek tip zarfla cevap verir:
// {success: bool, data?: any, error?: {message, path}}

type errorBody struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errorBody  `json:"error,omitempty"`
}

// sendSuccess başarılı cevabı 200 ile döndürür.
func sendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(envelope{Success: true, Data: data})
}

// sendError hatayı kategorisine uygun HTTP koduyla döndürür.
func sendError(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.StatusOf(err)).JSON(envelope{
		Success: false,
		Error:   &errorBody{Message: err.Error(), Path: c.Path()},
	})
}
