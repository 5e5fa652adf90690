package repositories

import (
	"context"
	"errors"
	"fmt"

	"tasktracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTaskRepository is a GORM implementation of TaskRepository.
type GORMTaskRepository struct {
	db *gorm.DB
}

// NewGORMTaskRepository creates a new instance of GORMTaskRepository.
func NewGORMTaskRepository(db *gorm.DB) *GORMTaskRepository {
	return &GORMTaskRepository{
		db: db,
	}
}

// Create creates a new task in the database.
func (r *GORMTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Labels == nil {
		task.Labels = []string{}
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetByID retrieves a task owned by ownerID.
func (r *GORMTaskRepository) GetByID(ctx context.Context, id, ownerID string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return &task, nil
}

// List returns one page of ownerID's tasks, newest first, and the total
// number of tasks matching the filter.
func (r *GORMTaskRepository) List(ctx context.Context, ownerID string, filter models.TaskFilter) ([]models.Task, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", ownerID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	// Share the filters between the count and the page query.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	tasks := make([]models.Task, 0)
	page := query.Order("created_at DESC").Order("id DESC").Offset(filter.Offset)
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}
	if err := page.Find(&tasks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// Update overwrites the mutable fields of a task matching both ID and owner.
func (r *GORMTaskRepository) Update(ctx context.Context, task *models.Task) error {
	if task.Labels == nil {
		task.Labels = []string{}
	}
	res := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Select("title", "description", "status", "priority", "due_date", "labels", "completed", "updated_at").
		Updates(task)
	if res.Error != nil {
		return fmt.Errorf("failed to update task %s: %w", task.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task matching both ID and owner.
func (r *GORMTaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Task{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteByOwner removes every task of ownerID and reports how many were removed.
func (r *GORMTaskRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Delete(&models.Task{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete tasks of user %s: %w", ownerID, res.Error)
	}
	return res.RowsAffected, nil
}

// Ensure the GORM repositories satisfy their interfaces.
var (
	_ TaskRepository = (*GORMTaskRepository)(nil)
	_ UserRepository = (*GORMUserRepository)(nil)
)
