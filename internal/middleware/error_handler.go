package middleware

import (
	"errors"
	"log/slog"

	"tasktracker/internal/repositories"
	"tasktracker/internal/services"
	"tasktracker/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps errors returned by handlers and middleware to JSON
// responses. When exposeDetails is set, 500 responses carry the error text.
func ErrorHandler(exposeDetails bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  vErr.Errors,
			})
		}

		if code, message, ok := classify(err); ok {
			return c.Status(code).JSON(fiber.Map{"message": message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		slog.Error("unhandled request error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err)

		body := fiber.Map{"message": "Internal server error"}
		if exposeDetails {
			body["error"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}

func classify(err error) (int, string, bool) {
	switch {
	case errors.Is(err, services.ErrMissingCredential):
		return fiber.StatusUnauthorized, "Access denied. No token provided", true
	case errors.Is(err, services.ErrExpiredCredential):
		return fiber.StatusUnauthorized, "Token expired", true
	case errors.Is(err, services.ErrMalformedCredential):
		return fiber.StatusUnauthorized, "Invalid token", true
	case errors.Is(err, services.ErrUnknownSubject):
		return fiber.StatusUnauthorized, "User not found", true
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, services.ErrIncorrectPassword):
		return fiber.StatusUnauthorized, "Current password is incorrect", true
	case errors.Is(err, services.ErrAccountInactive):
		return fiber.StatusForbidden, "Account is not active", true
	case errors.Is(err, repositories.ErrDuplicateKey):
		return fiber.StatusConflict, "Email already in use", true
	case errors.Is(err, repositories.ErrTaskNotFound):
		return fiber.StatusNotFound, "Task not found", true
	case errors.Is(err, repositories.ErrUserNotFound):
		return fiber.StatusNotFound, "User not found", true
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound, "Not found", true
	}
	return 0, "", false
}
