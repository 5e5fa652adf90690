package handlers

import (
	"tasktracker/internal/models"
	"tasktracker/internal/services"
	"tasktracker/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validation.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, validate *validation.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validate,
	}
}

// RegisterRoutes registers the authentication routes. Logout requires a
// signed-in user.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/logout", authRequired, h.HandleLogout)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		return err
	}

	result, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// HandleLogout acknowledges a logout. Tokens are stateless, so the client
// discards its copy.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Logout successful",
	})
}
