package handlers

import (
	"tasktracker/internal/middleware"
	"tasktracker/internal/models"
	"tasktracker/internal/services"
	"tasktracker/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the caller's own account.
type UserHandler struct {
	service  *services.UserService
	validate *validation.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, validate *validation.Validator) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the account routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	userRoutes := router.Group("/users", authRequired)
	userRoutes.Get("/profile", h.HandleGetProfile)
	userRoutes.Put("/profile", h.HandleUpdateProfile)
	userRoutes.Put("/password", h.HandleChangePassword)
	userRoutes.Delete("/account", h.HandleDeleteAccount)
}

// HandleGetProfile returns the caller's account.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	if user, ok := middleware.CurrentUser(c); ok {
		return c.JSON(user)
	}
	user, err := h.service.GetProfile(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// HandleUpdateProfile changes the caller's name and/or email.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateProfile(c.UserContext(), middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// HandleChangePassword replaces the caller's password.
func (h *UserHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req models.UpdatePasswordRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		return err
	}

	if err := h.service.ChangePassword(c.UserContext(), middleware.CurrentUserID(c), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

// HandleDeleteAccount removes the caller's account and all of its tasks.
func (h *UserHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	if err := h.service.DeleteAccount(c.UserContext(), middleware.CurrentUserID(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}
