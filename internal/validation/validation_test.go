package validation_test

import (
	"errors"
	"strings"
	"testing"

	"tasktracker/internal/models"
	"tasktracker/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr), "expected *validation.Error, got %v", err)
	names := make([]string, 0, len(vErr.Errors))
	for _, fe := range vErr.Errors {
		names = append(names, fe.Field)
	}
	return names
}

func TestValidator_Register(t *testing.T) {
	v := validation.New()

	err := v.Struct(models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "password1"})
	assert.NoError(t, err)

	err = v.Struct(models.RegisterRequest{Name: "   ", Email: "not-an-email", Password: "short"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrValidationFailed))
	assert.Equal(t, []string{"name", "email", "password"}, fieldNames(t, err))

	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "name is required", vErr.Errors[0].Message)
	assert.Equal(t, "email must be a valid email address", vErr.Errors[1].Message)
	assert.Equal(t, "password must be at least 8 characters", vErr.Errors[2].Message)
}

func TestValidator_RegisterMissingFields(t *testing.T) {
	v := validation.New()

	err := v.Struct(models.RegisterRequest{})
	require.Error(t, err)
	assert.Equal(t, []string{"name", "email", "password"}, fieldNames(t, err))
}

func TestValidator_Login(t *testing.T) {
	v := validation.New()

	// Login does not re-check the email shape.
	assert.NoError(t, v.Struct(models.LoginRequest{Email: "whatever", Password: "x"}))

	err := v.Struct(models.LoginRequest{})
	assert.Equal(t, []string{"email", "password"}, fieldNames(t, err))
}

func TestValidator_CreateTask(t *testing.T) {
	v := validation.New()

	valid := models.CreateTaskRequest{
		Title:    "Write report",
		Status:   "in-progress",
		Priority: "high",
		DueDate:  "2026-11-01",
		Labels:   []string{"work", "q4"},
	}
	assert.NoError(t, v.Struct(valid))

	err := v.Struct(models.CreateTaskRequest{
		Title:       strings.Repeat("x", 201),
		Description: strings.Repeat("d", 1001),
		Status:      "To Do",
		Priority:    "urgent",
		DueDate:     "01/11/2026",
		Labels:      []string{"ok", " "},
	})
	require.Error(t, err)
	assert.Equal(t, []string{"title", "description", "status", "priority", "due_date", "labels[1]"}, fieldNames(t, err))

	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "title must be at most 200 characters", vErr.Errors[0].Message)
	assert.Equal(t, "status must be one of: todo, in-progress, completed", vErr.Errors[2].Message)
	assert.Equal(t, "due_date must be a valid date (YYYY-MM-DD)", vErr.Errors[4].Message)
}

func TestValidator_CreateTaskRequiresTitle(t *testing.T) {
	v := validation.New()

	err := v.Struct(models.CreateTaskRequest{})
	assert.Equal(t, []string{"title"}, fieldNames(t, err))
}

func TestValidator_UpdateTaskOnlyChecksPresentFields(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(models.UpdateTaskRequest{}))
	assert.NoError(t, v.Struct(models.UpdateTaskRequest{Status: strPtr("completed")}))

	err := v.Struct(models.UpdateTaskRequest{Title: strPtr(""), Priority: strPtr("none")})
	assert.Equal(t, []string{"title", "priority"}, fieldNames(t, err))
}

func TestValidator_TaskListQuery(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(models.TaskListQuery{}))
	assert.NoError(t, v.Struct(models.TaskListQuery{Page: 3, Limit: 100, Status: "todo"}))

	err := v.Struct(models.TaskListQuery{Page: -1, Limit: 101})
	assert.Equal(t, []string{"page", "limit"}, fieldNames(t, err))
}

func TestValidator_PasswordChange(t *testing.T) {
	v := validation.New()

	err := v.Struct(models.UpdatePasswordRequest{NewPassword: "1234567"})
	assert.Equal(t, []string{"current_password", "new_password"}, fieldNames(t, err))
}

func TestError_Message(t *testing.T) {
	err := validation.NewError("due_date", "due_date must be a valid date")
	assert.Equal(t, "validation failed: due_date must be a valid date", err.Error())
	assert.ErrorIs(t, err, validation.ErrValidationFailed)
}
