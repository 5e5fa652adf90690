// Package config loads the service configuration from the environment and an
// optional config.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Database drivers understood by the database package.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// EnvProduction hides internal error details from API responses.
const EnvProduction = "production"

// Config holds all application configuration.
type Config struct {
	AppPort         string        `mapstructure:"app_port" validate:"required"`
	AppEnv          string        `mapstructure:"app_env" validate:"required"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"required,oneof=text json"`
	DBDriver        string        `mapstructure:"db_driver" validate:"required,oneof=postgres sqlite memory"`
	DatabaseDSN     string        `mapstructure:"database_dsn" validate:"required_unless=DBDriver memory"`
	JWTSecret       string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	JWTTTL          time.Duration `mapstructure:"jwt_ttl" validate:"gt=0"`
	BcryptCost      int           `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
	RabbitMQURL     string        `mapstructure:"rabbitmq_url" validate:"omitempty,url"`
	RateLimitMax    int           `mapstructure:"rate_limit_max"`
	RateLimitWindow time.Duration `mapstructure:"rate_limit_window" validate:"gt=0"`
	CORSOrigins     string        `mapstructure:"cors_origins"`
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

// Load reads configuration from environment variables and, when present,
// ./config.yaml. Environment variables take precedence over the file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app_port", ":8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("database_dsn", "tasktracker.db")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_ttl", 24*time.Hour)
	v.SetDefault("bcrypt_cost", 10)
	v.SetDefault("rabbitmq_url", "")
	v.SetDefault("rate_limit_max", 100)
	v.SetDefault("rate_limit_window", time.Minute)
	v.SetDefault("cors_origins", "*")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
