package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

// Task statuses are free labels: the operator can move a task to any status
// at any time, there is no enforced ordering.
const (
	TaskStatusWaiting    TaskStatus = "Waiting"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusFailed     TaskStatus = "Failed"
)

// AllTaskStatuses is the fixed board column order.
var AllTaskStatuses = []TaskStatus{
	TaskStatusWaiting,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusFailed,
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

type Task struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'Waiting'" json:"status"`
	Priority    TaskPriority   `gorm:"type:varchar(10);not null;default:'Low'" json:"priority"`
	IsArchived  bool           `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
