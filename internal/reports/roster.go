// Package reports holds the pure data-shaping functions behind the back
// office's list and report views. Everything here operates on records the
// repositories have already fetched; nothing touches the database.
package reports

import (
	"time"

	"github.com/propdesk/property-management-api/internal/constants"
	"github.com/propdesk/property-management-api/internal/models"
)

// RosterEntry is a tenant enriched for tabular display.
type RosterEntry struct {
	Tenant          models.Tenant `json:"tenant"`
	PropertyAddress string        `json:"property_address"`
	ActiveLease     *models.Lease `json:"active_lease,omitempty"`
}

// BuildRoster resolves each tenant's property address and active lease.
// A missing or dangling property reference renders as "-".
func BuildRoster(tenants []models.Tenant, properties []models.Property, leases []models.Lease, now time.Time) []RosterEntry {
	addresses := make(map[string]string, len(properties))
	for _, p := range properties {
		addresses[p.ID] = p.Address
	}

	leasesByTenant := make(map[string][]models.Lease)
	for _, l := range leases {
		leasesByTenant[l.TenantID] = append(leasesByTenant[l.TenantID], l)
	}

	entries := make([]RosterEntry, 0, len(tenants))
	for _, t := range tenants {
		entry := RosterEntry{
			Tenant:          t,
			PropertyAddress: constants.PlaceholderDash,
		}
		if t.PropertyID != "" {
			if addr, ok := addresses[t.PropertyID]; ok {
				entry.PropertyAddress = addr
			}
		}
		entry.ActiveLease = ActiveLease(leasesByTenant[t.ID], now)
		entries = append(entries, entry)
	}
	return entries
}

// ActiveLease returns the lease whose date range contains now. When several
// qualify, the most recently created one wins; earlier revisions of this
// system kept whichever happened to be scanned last.
func ActiveLease(leases []models.Lease, now time.Time) *models.Lease {
	var active *models.Lease
	for i := range leases {
		if !leases[i].ActiveAt(now) {
			continue
		}
		if active == nil || leases[i].CreatedAt.After(active.CreatedAt) {
			active = &leases[i]
		}
	}
	return active
}
