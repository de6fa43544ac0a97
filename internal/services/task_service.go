package services

import (
	"errors"
	"fmt"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/realtime"
	"github.com/propdesk/property-management-api/internal/reports"
	"github.com/propdesk/property-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
)

// Task event actions pushed to board subscribers.
const (
	TaskEventCreated  = "created"
	TaskEventUpdated  = "updated"
	TaskEventArchived = "archived"
	TaskEventDeleted  = "deleted"
)

// TaskEvent is the payload pushed over the task stream on every mutation.
type TaskEvent struct {
	Action string      `json:"action"`
	Task   models.Task `json:"task"`
}

// TaskService handles task business logic. The task board is the one
// push-based surface: every mutation is broadcast to stream subscribers,
// while other views re-fetch after mutating.
type TaskService struct {
	taskRepo repository.TaskRepository
	events   *realtime.Hub
}

// NewTaskService creates a new TaskService. The hub may be nil when no
// subscribers are wanted (tests).
func NewTaskService(taskRepo repository.TaskRepository, events *realtime.Hub) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		events:   events,
	}
}

func (s *TaskService) publish(action string, task models.Task) {
	if s.events == nil {
		return
	}
	s.events.Broadcast(TaskEvent{Action: action, Task: task})
}

// Board returns tasks in creation order, partitioned by status and grouped
// by creation month. The archived flag selects which side of the archive
// toggle is shown.
func (s *TaskService) Board(showArchived bool) ([]reports.TaskColumn, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return reports.BuildTaskBoard(tasks, showArchived), nil
}

// List returns all tasks in creation order.
func (s *TaskService) List() ([]models.Task, error) {
	return s.taskRepo.List()
}

// GetTask returns one task.
func (s *TaskService) GetTask(id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
}

// CreateTask creates a new task and notifies stream subscribers.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Status == "" {
		input.Status = models.TaskStatusWaiting
	}
	if input.Priority == "" {
		input.Priority = models.TaskPriorityLow
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.publish(TaskEventCreated, *task)
	return task, nil
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// untouched. Status is a free label: any value from the fixed set can be set
// at any time.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
}

// UpdateTask updates the provided fields and notifies stream subscribers.
func (s *TaskService) UpdateTask(id string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.publish(TaskEventUpdated, *task)
	return task, nil
}

// SetArchived flips the archive flag. Archived tasks disappear from the
// default board but are never deleted by archiving.
func (s *TaskService) SetArchived(id string, archived bool) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.IsArchived = archived
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.publish(TaskEventArchived, *task)
	return task, nil
}

// DeleteTask removes a task and notifies stream subscribers.
func (s *TaskService) DeleteTask(id string) error {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.publish(TaskEventDeleted, *task)
	return nil
}
