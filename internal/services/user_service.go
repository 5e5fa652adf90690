package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tasktracker/internal/models"
	"tasktracker/internal/repositories"
)

// UserService manages the signed-in user's own account.
type UserService struct {
	userRepo repositories.UserRepository
	taskRepo repositories.TaskRepository
	hasher   Hasher
	events   EventPublisher
}

// NewUserService creates a new UserService. events may be nil.
func NewUserService(userRepo repositories.UserRepository, taskRepo repositories.TaskRepository, hasher Hasher, events EventPublisher) *UserService {
	return &UserService{
		userRepo: userRepo,
		taskRepo: taskRepo,
		hasher:   hasher,
		events:   events,
	}
}

// GetProfile returns the account of userID.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile changes the name and/or email of userID.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	name, email := user.Name, user.Email
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email = NormalizeEmail(*req.Email)
		if email != user.Email {
			other, err := s.userRepo.GetByEmail(ctx, email)
			switch {
			case err == nil && other.ID != userID:
				return nil, fmt.Errorf("%w: %s", repositories.ErrEmailExists, email)
			case err != nil && !errors.Is(err, repositories.ErrNotFound):
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, name, email); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// ChangePassword replaces the password of userID after checking the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID string, req models.UpdatePasswordRequest) error {
	user, err := s.userRepo.GetByIDWithPassword(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(user.PasswordHash, req.CurrentPassword); err != nil {
		return ErrIncorrectPassword
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

// DeleteAccount removes the tasks of userID and then the account itself.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.taskRepo.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	publishEvent(s.events, EventUserDeleted, userID, "")
	return nil
}
