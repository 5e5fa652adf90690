package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tasktracker/internal/config"
	"tasktracker/internal/database"
	"tasktracker/internal/handlers"
	"tasktracker/internal/logger"
	"tasktracker/internal/middleware"
	"tasktracker/internal/repositories"
	"tasktracker/internal/router"
	"tasktracker/internal/services"
	"tasktracker/internal/validation"
	"tasktracker/pkg/rabbitmq"
)

// application bundles the HTTP app with the resources it owns.
type application struct {
	app *fiber.App
	db  *gorm.DB
	mq  *rabbitmq.Client
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info("configuration loaded",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"db_driver", cfg.DBDriver,
		"events_enabled", cfg.RabbitMQURL != "")

	a, err := buildApp(cfg, log)
	if err != nil {
		log.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if a.mq != nil {
		if err := a.mq.ConsumeEvents(rabbitmq.LogEvents(log)); err != nil {
			log.Warn("failed to start event consumer", "error", err)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting server", "addr", cfg.AppPort)
		if err := a.app.Listen(cfg.AppPort); err != nil {
			log.Error("server failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := a.shutdown(); err != nil {
		log.Error("error during shutdown", "error", err)
	}
	log.Info("server gracefully stopped")
}

// buildApp wires storage, services, handlers and the router from cfg.
func buildApp(cfg *config.Config, log *slog.Logger) (*application, error) {
	a := &application{}

	var (
		userRepo repositories.UserRepository
		taskRepo repositories.TaskRepository
	)
	if cfg.DBDriver == config.DriverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		userRepo = repositories.NewInMemoryUserRepository()
		taskRepo = repositories.NewInMemoryTaskRepository()
	} else {
		db, err := database.Open(database.Config{Driver: cfg.DBDriver, DSN: cfg.DatabaseDSN, Logger: log})
		if err != nil {
			return nil, err
		}
		a.db = db
		userRepo = repositories.NewGORMUserRepository(db)
		taskRepo = repositories.NewGORMTaskRepository(db)
	}

	// A nil *rabbitmq.Client must not end up inside the interface.
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: services.EventsExchange})
		if err != nil {
			log.Warn("event publishing disabled", "error", err)
		} else {
			a.mq = mq
			events = mq
		}
	}

	hasher := services.NewBcryptHasher(cfg.BcryptCost)
	tokens := services.NewTokenService(services.NewJWTSigner(cfg.JWTSecret), cfg.JWTTTL)
	validate := validation.New()

	authService := services.NewAuthService(userRepo, hasher, tokens, events)
	userService := services.NewUserService(userRepo, taskRepo, hasher, events)
	taskService := services.NewTaskService(taskRepo, events)

	a.app = router.New(router.Config{
		Production:      cfg.IsProduction(),
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		CORSOrigins:     cfg.CORSOrigins,
		RequestLogging:  true,
	},
		middleware.AuthRequired(tokens, userRepo),
		handlers.NewAuthHandler(authService, validate),
		handlers.NewTaskHandler(taskService, validate),
		handlers.NewUserHandler(userService, validate),
	)
	return a, nil
}

// shutdown stops the HTTP server, then closes the broker and the database.
func (a *application) shutdown() error {
	var errs []error
	if err := a.app.Shutdown(); err != nil {
		errs = append(errs, fmt.Errorf("fiber: %w", err))
	}
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			errs = append(errs, fmt.Errorf("rabbitmq: %w", err))
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}
	return errors.Join(errs...)
}
