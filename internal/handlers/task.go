package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/propdesk/property-management-api/internal/errors"
	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/realtime"
	"github.com/propdesk/property-management-api/internal/services"
	"go.uber.org/zap"
)

// TaskHandler coordinates task board HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
	events      *realtime.Hub
}

// NewTaskHandler creates a new TaskHandler. The hub serves the board's event
// stream; mutations publish through the service.
func NewTaskHandler(taskService *services.TaskService, events *realtime.Hub) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		events:      events,
	}
}

// GetBoard returns the task board: one column per status, tasks grouped by
// creation month. The archived query parameter flips the archive toggle.
func (h *TaskHandler) GetBoard(c *gin.Context) {
	showArchived := c.Query("archived") == "true"

	columns, err := h.taskService.Board(showArchived)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch task board")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns": columns,
	})
}

// ListTasks returns all tasks in creation order.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
	})
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task and pushes an event to stream subscribers.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string              `json:"title" binding:"required"`
		Description string              `json:"description"`
		Status      models.TaskStatus   `json:"status"`
		Priority    models.TaskPriority `json:"priority"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates the provided fields of a task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	type UpdateTaskRequest struct {
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		Status      *models.TaskStatus   `json:"status"`
		Priority    *models.TaskPriority `json:"priority"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrTitleRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update task")
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// ArchiveTask sets or clears the archive flag.
func (h *TaskHandler) ArchiveTask(c *gin.Context) {
	type ArchiveTaskRequest struct {
		Archived *bool `json:"archived" binding:"required"`
	}

	var req ArchiveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.SetArchived(c.Param("id"), *req.Archived)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to archive task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// StreamEvents upgrades the connection and subscribes it to task mutations.
func (h *TaskHandler) StreamEvents(c *gin.Context) {
	if err := realtime.ServeWS(h.events, c.Writer, c.Request); err != nil {
		zap.L().Warn("Task stream upgrade failed", zap.Error(err))
	}
}
