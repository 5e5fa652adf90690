// Package database opens the gorm connection and migrates the schema.
package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tasktracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrUnsupportedDriver is returned for drivers gorm is not wired to.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config selects the database driver and connection string.
type Config struct {
	Driver string
	DSN    string
	Logger *slog.Logger
}

// Open connects to the configured database and migrates the task tracker
// schema.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	l := cfg.Logger
	if l == nil {
		l = slog.Default()
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGORMLogger(l),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// newGORMLogger routes gorm's warnings and slow queries through slog.
func newGORMLogger(l *slog.Logger) gormlogger.Interface {
	return gormlogger.New(
		slog.NewLogLogger(l.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
