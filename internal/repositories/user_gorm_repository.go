package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tasktracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const passwordHashColumn = "password_hash"

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrEmailExists, user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID without the password hash.
func (r *GORMUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.first(r.db.WithContext(ctx).Omit(passwordHashColumn), "id = ?", id)
}

// GetByEmail retrieves a user by email without the password hash.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(r.db.WithContext(ctx).Omit(passwordHashColumn), "email = ?", email)
}

// GetByIDWithPassword retrieves a user by ID including the password hash.
func (r *GORMUserRepository) GetByIDWithPassword(ctx context.Context, id string) (*models.User, error) {
	return r.first(r.db.WithContext(ctx), "id = ?", id)
}

// GetByEmailWithPassword retrieves a user by email including the password hash.
func (r *GORMUserRepository) GetByEmailWithPassword(ctx context.Context, email string) (*models.User, error) {
	return r.first(r.db.WithContext(ctx), "email = ?", email)
}

func (r *GORMUserRepository) first(tx *gorm.DB, query string, arg string) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateProfile changes the display name and email of a user.
func (r *GORMUserRepository) UpdateProfile(ctx context.Context, id, name, email string) error {
	return r.updateColumns(ctx, id, map[string]any{"name": name, "email": email})
}

// UpdatePassword replaces the stored password hash.
func (r *GORMUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.updateColumns(ctx, id, map[string]any{passwordHashColumn: passwordHash})
}

// TouchLastLogin records a successful sign-in.
func (r *GORMUserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	// UpdateColumn keeps updated_at untouched: a login is not a profile change.
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).UpdateColumn("last_login_at", at)
	if res.Error != nil {
		return fmt.Errorf("failed to record login for user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *GORMUserRepository) updateColumns(ctx context.Context, id string, values map[string]any) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %v", ErrEmailExists, values["email"])
		}
		return fmt.Errorf("failed to update user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID.
func (r *GORMUserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
