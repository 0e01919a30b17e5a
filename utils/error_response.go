package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON envelope for failed operations.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Fail writes a human-readable failure. On server errors the underlying
// detail is logged and kept off the wire; on client errors it is echoed so
// the caller can correct the request.
func Fail(c *fiber.Ctx, status int, message string, err error) error {
	resp := ErrorResponse{Message: message}
	if err != nil {
		if status >= fiber.StatusInternalServerError {
			log.Printf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
		} else {
			resp.Error = err.Error()
		}
	}
	return c.Status(status).JSON(resp)
}
