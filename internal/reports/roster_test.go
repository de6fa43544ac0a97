package reports

import (
	"testing"
	"time"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBuildRoster(t *testing.T) {
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	tenants := []models.Tenant{
		{ID: "t1", FirstName: "Ada", LastName: "Byrne", PropertyID: "p1"},
		{ID: "t2", FirstName: "Rhys", LastName: "Owen", PropertyID: "gone"},
		{ID: "t3", FirstName: "Mia", LastName: "Khan"},
	}
	properties := []models.Property{
		{ID: "p1", Address: "12 Harbour Street"},
	}
	leases := []models.Lease{
		{ID: "l1", TenantID: "t1", StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, 11, 0)},
	}

	entries := BuildRoster(tenants, properties, leases, now)
	require.Len(t, entries, 3)

	require.Equal(t, "12 Harbour Street", entries[0].PropertyAddress)
	require.NotNil(t, entries[0].ActiveLease)
	require.Equal(t, "l1", entries[0].ActiveLease.ID)

	// Dangling and empty property references both render as "-".
	require.Equal(t, "-", entries[1].PropertyAddress)
	require.Equal(t, "-", entries[2].PropertyAddress)
	require.Nil(t, entries[1].ActiveLease)
}

func TestActiveLease_MostRecentlyCreatedWins(t *testing.T) {
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	leases := []models.Lease{
		{
			ID:        "older",
			StartDate: now.AddDate(0, -6, 0),
			EndDate:   now.AddDate(0, 6, 0),
			CreatedAt: now.AddDate(0, -6, 0),
		},
		{
			ID:        "newer",
			StartDate: now.AddDate(0, -1, 0),
			EndDate:   now.AddDate(0, 11, 0),
			CreatedAt: now.AddDate(0, -1, 0),
		},
	}

	active := ActiveLease(leases, now)
	require.NotNil(t, active)
	require.Equal(t, "newer", active.ID)

	// Order of the slice must not change the winner.
	active = ActiveLease([]models.Lease{leases[1], leases[0]}, now)
	require.NotNil(t, active)
	require.Equal(t, "newer", active.ID)
}

func TestActiveLease_NoneInRange(t *testing.T) {
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	leases := []models.Lease{
		{ID: "expired", StartDate: now.AddDate(-1, 0, 0), EndDate: now.AddDate(0, -1, 0)},
		{ID: "future", StartDate: now.AddDate(0, 1, 0), EndDate: now.AddDate(1, 0, 0)},
	}

	require.Nil(t, ActiveLease(leases, now))
}

func TestActiveLease_BoundaryDatesInclusive(t *testing.T) {
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	lease := models.Lease{ID: "edge", StartDate: now, EndDate: now}
	active := ActiveLease([]models.Lease{lease}, now)
	require.NotNil(t, active)
	require.Equal(t, "edge", active.ID)
}
