package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tasktracker/internal/models"
	"tasktracker/internal/repositories"
)

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService handles registration and sign-in.
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   Hasher
	tokens   *TokenService
	events   EventPublisher
}

// NewAuthService creates a new AuthService. events may be nil.
func NewAuthService(userRepo repositories.UserRepository, hasher Hasher, tokens *TokenService, events EventPublisher) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		events:   events,
	}
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and signs it in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*AuthResult, error) {
	email := NormalizeEmail(req.Email)

	_, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", repositories.ErrEmailExists, email)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Status:       models.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID)
	publishEvent(s.events, EventUserRegistered, user.ID, "")

	user.PasswordHash = ""
	return &AuthResult{Token: token, User: user}, nil
}

// Login checks credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmailWithPassword(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, ErrAccountInactive
	}

	now := time.Now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		slog.Warn("failed to record last login", "user_id", user.ID, "error", err)
	} else {
		user.LastLoginAt = &now
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{Token: token, User: user}, nil
}
