package handlers

import (
	"tasktracker/internal/middleware"
	"tasktracker/internal/models"
	"tasktracker/internal/services"
	"tasktracker/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service  *services.TaskService
	validate *validation.Validator
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *services.TaskService, validate *validation.Validator) *TaskHandler {
	return &TaskHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the task routes. Every route requires a
// signed-in user.
func (h *TaskHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	taskRoutes := router.Group("/tasks", authRequired)
	taskRoutes.Get("/", h.HandleListTasks)
	taskRoutes.Post("/", h.HandleCreateTask)
	taskRoutes.Get("/:id", h.HandleGetTask)
	taskRoutes.Put("/:id", h.HandleUpdateTask)
	taskRoutes.Delete("/:id", h.HandleDeleteTask)
}

// HandleListTasks returns one page of the caller's tasks.
func (h *TaskHandler) HandleListTasks(c *fiber.Ctx) error {
	var q models.TaskListQuery
	if err := bindQuery(c, h.validate, &q); err != nil {
		return err
	}

	page, err := h.service.List(c.UserContext(), middleware.CurrentUserID(c), q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// HandleCreateTask creates a task owned by the caller.
func (h *TaskHandler) HandleCreateTask(c *fiber.Ctx) error {
	var req models.CreateTaskRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		return err
	}

	task, err := h.service.Create(c.UserContext(), middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// HandleGetTask returns a single task of the caller.
func (h *TaskHandler) HandleGetTask(c *fiber.Ctx) error {
	task, err := h.service.Get(c.UserContext(), middleware.CurrentUserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(task)
}

// HandleUpdateTask applies a partial update to a task of the caller.
func (h *TaskHandler) HandleUpdateTask(c *fiber.Ctx) error {
	var req models.UpdateTaskRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		return err
	}

	task, err := h.service.Update(c.UserContext(), middleware.CurrentUserID(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(task)
}

// HandleDeleteTask deletes a task of the caller.
func (h *TaskHandler) HandleDeleteTask(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), middleware.CurrentUserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
