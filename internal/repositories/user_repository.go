package repositories

import (
	"context"
	"time"

	"tasktracker/internal/models"
)

// UserRepository defines the interface for user data access.
// Reads without the WithPassword suffix never populate PasswordHash.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDWithPassword(ctx context.Context, id string) (*models.User, error)
	GetByEmailWithPassword(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, name, email string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
