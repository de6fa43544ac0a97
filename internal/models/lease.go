package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lease struct {
	ID         string         `gorm:"type:varchar(36);primarykey" json:"id"`
	PropertyID string         `gorm:"type:varchar(36);index" json:"property_id"`
	TenantID   string         `gorm:"type:varchar(36);index" json:"tenant_id"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
	Rent       float64        `json:"rent"`
	Deposit    float64        `json:"deposit"`
	Terms      string         `gorm:"type:text" json:"terms"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (l *Lease) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// ActiveAt reports whether the lease's date range contains the given instant.
func (l *Lease) ActiveAt(now time.Time) bool {
	return !l.StartDate.After(now) && !l.EndDate.Before(now)
}

// ExpiredAt reports whether the lease ended before the given instant.
func (l *Lease) ExpiredAt(now time.Time) bool {
	return l.EndDate.Before(now)
}
