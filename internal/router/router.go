// Package router assembles the fiber application.
package router

import (
	"time"

	"tasktracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Config controls the cross-cutting middleware of the app.
type Config struct {
	Production      bool
	RateLimitMax    int
	RateLimitWindow time.Duration
	CORSOrigins     string
	RequestLogging  bool
}

// RouteRegistrar mounts a group of routes under the API prefix.
type RouteRegistrar interface {
	RegisterRoutes(router fiber.Router, authRequired fiber.Handler)
}

// APIPrefix is the mount point of every API route.
const APIPrefix = "/api/v1"

// New builds the fiber app with recovery, CORS, request logging and rate
// limiting, the health check and the API routes.
func New(cfg Config, authRequired fiber.Handler, registrars ...RouteRegistrar) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "tasktracker",
		ErrorHandler: middleware.ErrorHandler(!cfg.Production),
	})

	app.Use(recover.New())
	app.Use(CORS(cfg.CORSOrigins))
	if cfg.RequestLogging {
		app.Use(logger.New())
	}
	if cfg.RateLimitMax > 0 {
		app.Use(RateLimit(cfg.RateLimitMax, cfg.RateLimitWindow))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := app.Group(APIPrefix)
	for _, r := range registrars {
		r.RegisterRoutes(api, authRequired)
	}

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
	return app
}
