package utils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the shape of every failure response.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the shape of confirmation-only responses.
type MessageBody struct {
	Message string `json:"message"`
}

// JSONResponse sends data as-is with the given status. List and record
// endpoints return their payload bare, without an envelope.
func JSONResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// MessageResponse sends a confirmation message.
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(MessageBody{Message: message})
}

// ErrorResponse sends an error message.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ErrorBody{Error: message})
}
