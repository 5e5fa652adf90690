package models

import "time"

// TaskStatus is the workflow column a task sits in.
type TaskStatus string

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"

	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a single to-do item owned by a user.
type Task struct {
	ID          string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string       `json:"user_id" gorm:"type:varchar(36);not null;index:idx_tasks_user_status,priority:1"`
	Title       string       `json:"title" gorm:"type:varchar(200);not null"`
	Description string       `json:"description" gorm:"type:varchar(1000)"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:todo;index:idx_tasks_user_status,priority:2"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(10);not null;default:medium"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Labels      []string     `json:"labels" gorm:"serializer:json;type:text"`
	Completed   bool         `json:"completed" gorm:"not null;default:false"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TaskFilter narrows and pages a task listing. Zero values mean "any".
type TaskFilter struct {
	Status   TaskStatus
	Priority TaskPriority
	Offset   int
	Limit    int
}
