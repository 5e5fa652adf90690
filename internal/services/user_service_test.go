package services_test

import (
	"context"
	"testing"

	"tasktracker/internal/models"
	"tasktracker/internal/repositories"
	"tasktracker/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	current := &models.User{ID: "user-1", Email: "a@x.com", Name: "A"}

	t.Run("renames and changes email", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := services.NewUserService(users, new(MockTaskRepository), fakeHasher{}, nil)

		users.On("GetByID", mock.Anything, "user-1").Return(current, nil).Once()
		users.On("GetByEmail", mock.Anything, "new@x.com").Return(nil, repositories.ErrUserNotFound).Once()
		users.On("UpdateProfile", mock.Anything, "user-1", "Alice", "new@x.com").Return(nil).Once()
		users.On("GetByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", Email: "new@x.com", Name: "Alice"}, nil).Once()

		got, err := svc.UpdateProfile(ctx, "user-1", models.UpdateProfileRequest{Name: strPtr(" Alice "), Email: strPtr("NEW@x.com")})
		require.NoError(t, err)
		assert.Equal(t, "new@x.com", got.Email)
		users.AssertExpectations(t)
	})

	t.Run("email owned by someone else", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := services.NewUserService(users, new(MockTaskRepository), fakeHasher{}, nil)

		users.On("GetByID", mock.Anything, "user-1").Return(current, nil).Once()
		users.On("GetByEmail", mock.Anything, "b@x.com").Return(&models.User{ID: "user-2"}, nil).Once()

		_, err := svc.UpdateProfile(ctx, "user-1", models.UpdateProfileRequest{Email: strPtr("b@x.com")})
		assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
		users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	stored := &models.User{ID: "user-1", PasswordHash: "hashed:password1"}

	t.Run("correct current password", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := services.NewUserService(users, new(MockTaskRepository), fakeHasher{}, nil)
		users.On("GetByIDWithPassword", mock.Anything, "user-1").Return(stored, nil).Once()
		users.On("UpdatePassword", mock.Anything, "user-1", "hashed:password2").Return(nil).Once()

		err := svc.ChangePassword(ctx, "user-1", models.UpdatePasswordRequest{CurrentPassword: "password1", NewPassword: "password2"})
		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("wrong current password", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := services.NewUserService(users, new(MockTaskRepository), fakeHasher{}, nil)
		users.On("GetByIDWithPassword", mock.Anything, "user-1").Return(stored, nil).Once()

		err := svc.ChangePassword(ctx, "user-1", models.UpdatePasswordRequest{CurrentPassword: "nope", NewPassword: "password2"})
		assert.ErrorIs(t, err, services.ErrIncorrectPassword)
		users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_DeleteAccount(t *testing.T) {
	users := new(MockUserRepository)
	tasks := new(MockTaskRepository)
	publisher := new(MockPublisher)
	svc := services.NewUserService(users, tasks, fakeHasher{}, publisher)

	var order []string
	tasks.On("DeleteByOwner", mock.Anything, "user-1").Run(func(mock.Arguments) { order = append(order, "tasks") }).Return(int64(3), nil).Once()
	users.On("Delete", mock.Anything, "user-1").Run(func(mock.Arguments) { order = append(order, "user") }).Return(nil).Once()
	publisher.On("Publish", services.EventsExchange, services.EventUserDeleted, mock.Anything).Return(nil).Once()

	require.NoError(t, svc.DeleteAccount(context.Background(), "user-1"))
	assert.Equal(t, []string{"tasks", "user"}, order)
	users.AssertExpectations(t)
	tasks.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
