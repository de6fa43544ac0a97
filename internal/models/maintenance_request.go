package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOutstanding MaintenanceStatus = "Outstanding"
	MaintenanceStatusCompleted   MaintenanceStatus = "Completed"
	MaintenanceStatusFailed      MaintenanceStatus = "Failed/Deferred"
)

// MaintenanceRequest records an issue raised against a property. TenantID is
// optional. Paid is only meaningful once the work is Completed.
type MaintenanceRequest struct {
	ID          string            `gorm:"type:varchar(36);primarykey" json:"id"`
	PropertyID  string            `gorm:"type:varchar(36);index" json:"property_id"`
	TenantID    string            `gorm:"type:varchar(36);index" json:"tenant_id"`
	Description string            `gorm:"type:text" json:"description"`
	Status      MaintenanceStatus `gorm:"type:varchar(20);not null;default:'Outstanding'" json:"status"`
	Price       float64           `gorm:"not null;default:0" json:"price"`
	Paid        bool              `gorm:"not null;default:false" json:"paid"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (m *MaintenanceRequest) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
