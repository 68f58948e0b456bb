package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the failure payload returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendJSON sends a success payload as-is.
func SendJSON(c *fiber.Ctx, payload interface{}) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
