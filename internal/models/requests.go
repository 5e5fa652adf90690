package models

// DateLayout is the wire format of task due dates.
const DateLayout = "2006-01-02"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=200"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
	Status      string   `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Labels      []string `json:"labels" validate:"omitempty,max=20,dive,notblank,max=30"`
}

// UpdateTaskRequest is the body of PUT /tasks/:id. Absent fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string   `json:"title" validate:"omitempty,notblank,max=200"`
	Description *string   `json:"description" validate:"omitempty,max=1000"`
	Status      *string   `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	Priority    *string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Labels      *[]string `json:"labels" validate:"omitempty,max=20,dive,notblank,max=30"`
	Completed   *bool     `json:"completed"`
}

// TaskListQuery is the query string of GET /tasks.
type TaskListQuery struct {
	Page     int    `query:"page" json:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Status   string `query:"status" json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	Priority string `query:"priority" json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateProfileRequest is the body of PUT /users/profile.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,notblank,max=50"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

// UpdatePasswordRequest is the body of PUT /users/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}
