package services_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"tasktracker/internal/models"
	"tasktracker/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepository) GetByIDWithPassword(ctx context.Context, id string) (*models.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepository) GetByEmailWithPassword(ctx context.Context, email string) (*models.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id, name, email string) error {
	args := m.Called(ctx, id, name, email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) user(args mock.Arguments) (*models.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockTaskRepository is a mock implementation of repositories.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id, ownerID string) (*models.Task, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, ownerID string, filter models.TaskFilter) ([]models.Task, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Task), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

// fakeHasher "hashes" by prefixing, keeping tests free of bcrypt cost.
type fakeHasher struct{}

var errMismatch = errors.New("mismatch")

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errMismatch
	}
	return nil
}

// fakeSigner encodes claims as "subject|iat|exp|sig" where sig is "ok" for
// tokens it issued itself.
type fakeSigner struct{}

func (fakeSigner) Sign(c services.TokenClaims) (string, error) {
	return strings.Join([]string{c.Subject, c.IssuedAt.Format(time.RFC3339), c.ExpiresAt.Format(time.RFC3339), "ok"}, "|"), nil
}

func (fakeSigner) Decode(token string) (services.TokenClaims, bool, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 4 {
		return services.TokenClaims{}, false, errors.New("bad token")
	}
	var c services.TokenClaims
	c.Subject = parts[0]
	c.IssuedAt, _ = time.Parse(time.RFC3339, parts[1])
	c.ExpiresAt, _ = time.Parse(time.RFC3339, parts[2])
	return c, parts[3] == "ok", nil
}
