package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant may be unassigned: PropertyID is empty until the tenant is placed,
// and may point at a property that has since been deleted.
type Tenant struct {
	ID            string         `gorm:"type:varchar(36);primarykey" json:"id"`
	FirstName     string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string         `gorm:"type:varchar(100);not null" json:"last_name"`
	Email         string         `gorm:"type:varchar(255)" json:"email"`
	ContactNumber string         `gorm:"type:varchar(50)" json:"contact_number"`
	PropertyID    string         `gorm:"type:varchar(36);index" json:"property_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
