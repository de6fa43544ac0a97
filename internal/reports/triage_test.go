package reports

import (
	"testing"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBuildTriageBoard(t *testing.T) {
	properties := []models.Property{
		{ID: "p1", Address: "12 Harbour Street"},
	}
	requests := []models.MaintenanceRequest{
		{ID: "m1", PropertyID: "p1", Description: "Leaking tap", Status: models.MaintenanceStatusOutstanding},
		{ID: "m2", PropertyID: "p1", Description: "Boiler service", Status: models.MaintenanceStatusCompleted},
		{ID: "m3", PropertyID: "gone", Description: "Broken fence", Status: models.MaintenanceStatusFailed},
		{ID: "m4", PropertyID: "p1", Description: "Mystery", Status: "Unknown"},
	}

	board := BuildTriageBoard(requests, properties)

	require.Len(t, board.Outstanding, 1)
	require.Len(t, board.Completed, 1)
	require.Len(t, board.FailedDeferred, 1)

	require.Equal(t, "12 Harbour Street", board.Outstanding[0].PropertyAddress)
	require.Equal(t, "No address available", board.FailedDeferred[0].PropertyAddress)
}

func TestFilterBoard_MatchesResolvedAddress(t *testing.T) {
	properties := []models.Property{
		{ID: "p1", Address: "12 Harbour Street"},
		{ID: "p2", Address: "3 King's Road"},
	}
	requests := []models.MaintenanceRequest{
		{ID: "m1", PropertyID: "p1", Description: "Leaking tap", Status: models.MaintenanceStatusOutstanding},
		{ID: "m2", PropertyID: "p2", Description: "Boiler service", Status: models.MaintenanceStatusOutstanding},
	}

	board := BuildTriageBoard(requests, properties)

	filtered := FilterBoard(board, "harbour")
	require.Len(t, filtered.Outstanding, 1)
	require.Equal(t, "m1", filtered.Outstanding[0].ID)

	// Empty query keeps everything.
	filtered = FilterBoard(board, "")
	require.Len(t, filtered.Outstanding, 2)
}

func TestMatchesQuery(t *testing.T) {
	tenant := models.Tenant{FirstName: "Ada", LastName: "Byrne", Email: "ada@example.com"}

	require.True(t, MatchesQuery(tenant, "ada"))
	require.True(t, MatchesQuery(tenant, "BYRNE"))
	require.True(t, MatchesQuery(tenant, ""))
	require.False(t, MatchesQuery(tenant, "nomatch"))
}
