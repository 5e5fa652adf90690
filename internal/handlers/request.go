package handlers

import (
	"log/slog"

	"tasktracker/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// errInvalidBody is returned for request bodies that are not valid JSON.
var errInvalidBody = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")

// bindJSON decodes the request body into dst and validates it.
func bindJSON(c *fiber.Ctx, v *validation.Validator, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		slog.Debug("failed to parse request body", "path", c.Path(), "error", err)
		return errInvalidBody
	}
	return v.Struct(dst)
}

// bindQuery decodes the query string into dst and validates it.
func bindQuery(c *fiber.Ctx, v *validation.Validator, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	return v.Struct(dst)
}
