package repositories

import (
	"context"

	"tasktracker/internal/models"
)

// TaskRepository defines the interface for task data access.
// Every lookup and mutation is scoped by the owning user.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id, ownerID string) (*models.Task, error)
	List(ctx context.Context, ownerID string, filter models.TaskFilter) ([]models.Task, int64, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id, ownerID string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
