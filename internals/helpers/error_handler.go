// file: internals/helpers/error_handler.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FiberErrorHandler renders every error a handler returns as the standard
// error envelope, so controllers can just return fiber.NewError.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := err.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		message = fe.Message
	}

	return JsonError(c, status, message)
}
