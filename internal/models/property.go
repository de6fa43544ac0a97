package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property statuses and types the back office offers in its edit form.
var (
	AllPropertyStatuses = []string{"Vacant", "Occupied", "Under Maintenance"}
	AllPropertyTypes    = []string{"Studio", "Flat", "House", "Penthouse"}
)

// Property is a managed rental unit. Related records (tenants, leases,
// maintenance requests, the financial summary) reference it by ID only;
// there are no database-level foreign keys, so deleting a property leaves
// its dependents in place with references that no longer resolve.
type Property struct {
	ID               string         `gorm:"type:varchar(36);primarykey" json:"id"`
	PropertyName     string         `gorm:"type:varchar(255)" json:"property_name"`
	Address          string         `gorm:"type:varchar(255);not null" json:"address"`
	Description      string         `gorm:"type:text" json:"description"`
	OwnerName        string         `gorm:"type:varchar(255)" json:"owner_name"`
	OwnerPhoneNumber string         `gorm:"type:varchar(50)" json:"owner_phone_number"`
	OwnerEmail       string         `gorm:"type:varchar(255)" json:"owner_email"`
	Postcode         string         `gorm:"type:varchar(20)" json:"postcode"`
	Price            float64        `gorm:"not null;default:0" json:"price"`
	Status           []string       `gorm:"serializer:json" json:"status"`
	Type             []string       `gorm:"serializer:json" json:"type"`
	Bedrooms         int            `json:"bedrooms"`
	Bathrooms        int            `json:"bathrooms"`
	Size             int            `json:"size"`
	KeyNumber        string         `gorm:"type:varchar(50)" json:"key_number"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
