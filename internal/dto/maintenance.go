package dto

import "github.com/propdesk/property-management-api/internal/models"

// MaintenanceDetail is the detail-modal view of one maintenance request,
// with the property and (optional) tenant resolved.
type MaintenanceDetail struct {
	models.MaintenanceRequest
	PropertyAddress string         `json:"property_address"`
	KeyNumber       string         `json:"key_number"`
	Tenant          *models.Tenant `json:"tenant,omitempty"`
}
