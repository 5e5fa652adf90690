package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tasktracker/internal/models"
	"tasktracker/internal/repositories"
	"tasktracker/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Context keys set by AuthRequired.
const (
	LocalUser   = "user"
	LocalUserID = "user_id"
)

// TokenVerifier resolves a bearer token to its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder loads the account a token was issued to.
type UserFinder interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// AuthRequired is a Fiber middleware to check for a valid JWT token and
// attach the authenticated user to the request.
func AuthRequired(tokens TokenVerifier, users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Expected format: "Bearer <token>"
		parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			return services.ErrMissingCredential
		}

		userID, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			slog.Debug("token verification failed", "path", c.Path(), "reason", errorKind(err))
			return err
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return services.ErrUnknownSubject
			}
			return fmt.Errorf("failed to load authenticated user: %w", err)
		}

		c.Locals(LocalUser, user)
		c.Locals(LocalUserID, user.ID)
		return c.Next()
	}
}

// CurrentUser returns the user attached by AuthRequired.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(LocalUser).(*models.User)
	return user, ok
}

// CurrentUserID returns the id of the user attached by AuthRequired.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, services.ErrExpiredCredential):
		return "expired"
	case errors.Is(err, services.ErrMalformedCredential):
		return "malformed"
	default:
		return "other"
	}
}
