package dto

import "github.com/propdesk/property-management-api/internal/models"

// LeaseHistoryEntry is one row of a tenant's lease history.
type LeaseHistoryEntry struct {
	models.Lease
	IsExpired bool `json:"is_expired"`
}

// TenantDetail is the detail-panel view of one tenant.
type TenantDetail struct {
	Tenant          models.Tenant       `json:"tenant"`
	PropertyAddress string              `json:"property_address"`
	ActiveLease     *models.Lease       `json:"active_lease,omitempty"`
	Leases          []LeaseHistoryEntry `json:"leases"`
}
