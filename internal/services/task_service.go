package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"tasktracker/internal/models"
	"tasktracker/internal/repositories"
)

// Listing defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// TaskPage is one page of a user's tasks.
type TaskPage struct {
	Tasks      []models.Task `json:"tasks"`
	Pagination Pagination    `json:"pagination"`
}

// TaskService handles business logic for tasks. Every operation is scoped
// to the owning user.
type TaskService struct {
	taskRepo repositories.TaskRepository
	events   EventPublisher
}

// NewTaskService creates a new TaskService. events may be nil.
func NewTaskService(taskRepo repositories.TaskRepository, events EventPublisher) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		events:   events,
	}
}

// Create adds a task for userID.
func (s *TaskService) Create(ctx context.Context, userID string, req models.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      models.TaskStatusTodo,
		Priority:    models.TaskPriorityMedium,
		Labels:      cleanLabels(req.Labels),
	}
	if req.Status != "" {
		task.Status = models.TaskStatus(req.Status)
	}
	if req.Priority != "" {
		task.Priority = models.TaskPriority(req.Priority)
	}
	if req.DueDate != "" {
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}
	task.Completed = task.Status == models.TaskStatusCompleted

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	publishEvent(s.events, EventTaskCreated, userID, task.ID)
	return task, nil
}

// Get returns a single task of userID.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID, userID)
}

// List returns one page of userID's tasks.
func (s *TaskService) List(ctx context.Context, userID string, q models.TaskListQuery) (*TaskPage, error) {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	tasks, total, err := s.taskRepo.List(ctx, userID, models.TaskFilter{
		Status:   models.TaskStatus(q.Status),
		Priority: models.TaskPriority(q.Priority),
		Offset:   pageOffset(page, limit),
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	return &TaskPage{
		Tasks: tasks,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}, nil
}

// Update applies the fields present in req to a task of userID.
//
// Setting completed moves the task to the completed column; clearing it on a
// completed task moves it back to todo. Completed always mirrors the status.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, req models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = models.TaskPriority(*req.Priority)
	}
	if req.Labels != nil {
		task.Labels = cleanLabels(*req.Labels)
	}
	if req.DueDate != nil {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
	}
	if req.Completed != nil {
		switch {
		case *req.Completed:
			task.Status = models.TaskStatusCompleted
		case task.Status == models.TaskStatusCompleted:
			task.Status = models.TaskStatusTodo
		}
	}
	task.Completed = task.Status == models.TaskStatusCompleted
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	publishEvent(s.events, EventTaskUpdated, userID, task.ID)
	return task, nil
}

// Delete removes a task of userID.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if err := s.taskRepo.Delete(ctx, taskID, userID); err != nil {
		return err
	}
	publishEvent(s.events, EventTaskDeleted, userID, taskID)
	return nil
}

// pageOffset returns the number of rows before page. Pages past the end of
// the int range saturate, so they list nothing instead of wrapping around.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func cleanLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func parseDueDate(s string) (*time.Time, error) {
	due, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: %w", s, err)
	}
	return &due, nil
}
