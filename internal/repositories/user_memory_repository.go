package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tasktracker/internal/models"

	"github.com/google/uuid"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	users   map[string]models.User
	byEmail map[string]string
	mu      sync.RWMutex
}

// NewInMemoryUserRepository creates a new instance of InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

// Create adds a new user, enforcing email uniqueness.
func (r *InMemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return fmt.Errorf("%w: %s", ErrEmailExists, user.Email)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = copyUser(*user)
	r.byEmail[user.Email] = user.ID
	return nil
}

// GetByID returns a user by ID without the password hash.
func (r *InMemoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.get(id, false)
}

// GetByEmail returns a user by email without the password hash.
func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.getByEmail(email, false)
}

// GetByIDWithPassword returns a user by ID including the password hash.
func (r *InMemoryUserRepository) GetByIDWithPassword(_ context.Context, id string) (*models.User, error) {
	return r.get(id, true)
}

// GetByEmailWithPassword returns a user by email including the password hash.
func (r *InMemoryUserRepository) GetByEmailWithPassword(_ context.Context, email string) (*models.User, error) {
	return r.getByEmail(email, true)
}

func (r *InMemoryUserRepository) getByEmail(email string, withPassword bool) (*models.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}
	return r.get(id, withPassword)
}

func (r *InMemoryUserRepository) get(id string, withPassword bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user = copyUser(user)
	if !withPassword {
		user.PasswordHash = ""
	}
	return &user, nil
}

// UpdateProfile changes the display name and email of a user.
func (r *InMemoryUserRepository) UpdateProfile(_ context.Context, id, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	if owner, taken := r.byEmail[email]; taken && owner != id {
		return fmt.Errorf("%w: %s", ErrEmailExists, email)
	}
	delete(r.byEmail, user.Email)
	user.Name = name
	user.Email = email
	user.UpdatedAt = time.Now()
	r.users[id] = user
	r.byEmail[email] = id
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *InMemoryUserRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	r.users[id] = user
	return nil
}

// TouchLastLogin records a successful sign-in.
func (r *InMemoryUserRepository) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.LastLoginAt = &at
	r.users[id] = user
	return nil
}

// Delete removes a user by ID.
func (r *InMemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	delete(r.byEmail, user.Email)
	return nil
}

func copyUser(u models.User) models.User {
	if u.LastLoginAt != nil {
		at := *u.LastLoginAt
		u.LastLoginAt = &at
	}
	return u
}
