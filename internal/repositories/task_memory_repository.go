package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"tasktracker/internal/models"

	"github.com/google/uuid"
)

// InMemoryTaskRepository is an in-memory implementation of TaskRepository.
type InMemoryTaskRepository struct {
	tasks map[string]models.Task
	mu    sync.RWMutex
}

// NewInMemoryTaskRepository creates a new instance of InMemoryTaskRepository.
func NewInMemoryTaskRepository() *InMemoryTaskRepository {
	return &InMemoryTaskRepository{
		tasks: make(map[string]models.Task),
	}
}

// Create adds a new task.
func (r *InMemoryTaskRepository) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Labels == nil {
		task.Labels = []string{}
	}
	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now
	r.tasks[task.ID] = copyTask(*task)
	return nil
}

// GetByID returns a task owned by ownerID.
func (r *InMemoryTaskRepository) GetByID(_ context.Context, id, ownerID string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, ErrTaskNotFound
	}
	task = copyTask(task)
	return &task, nil
}

// List returns one page of ownerID's tasks, newest first, and the total
// number of tasks matching the filter.
func (r *InMemoryTaskRepository) List(_ context.Context, ownerID string, filter models.TaskFilter) ([]models.Task, int64, error) {
	r.mu.RLock()
	matched := make([]models.Task, 0)
	for _, task := range r.tasks {
		if task.UserID != ownerID {
			continue
		}
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		matched = append(matched, copyTask(task))
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	start := min(max(filter.Offset, 0), len(matched))
	end := len(matched)
	if filter.Limit > 0 {
		end = min(start+filter.Limit, len(matched))
	}
	return matched[start:end], total, nil
}

// Update replaces a task matching both ID and owner.
func (r *InMemoryTaskRepository) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return ErrTaskNotFound
	}
	if task.Labels == nil {
		task.Labels = []string{}
	}
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = copyTask(*task)
	return nil
}

// Delete removes a task matching both ID and owner.
func (r *InMemoryTaskRepository) Delete(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

// DeleteByOwner removes every task of ownerID.
func (r *InMemoryTaskRepository) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, task := range r.tasks {
		if task.UserID == ownerID {
			delete(r.tasks, id)
			removed++
		}
	}
	return removed, nil
}

func copyTask(t models.Task) models.Task {
	if t.Labels != nil {
		t.Labels = append([]string{}, t.Labels...)
	}
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

var (
	_ TaskRepository = (*InMemoryTaskRepository)(nil)
	_ UserRepository = (*InMemoryUserRepository)(nil)
)
