package reports

import (
	"testing"
	"time"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestComputeRollups(t *testing.T) {
	properties := []models.Property{
		{ID: "p1", Address: "12 Harbour Street", Price: 1000},
	}
	requests := []models.MaintenanceRequest{
		{ID: "m1", PropertyID: "p1", Status: models.MaintenanceStatusCompleted, Price: 200, Paid: true},
		{ID: "m2", PropertyID: "p1", Status: models.MaintenanceStatusCompleted, Price: 50, Paid: false},
		{ID: "m3", PropertyID: "p1", Status: models.MaintenanceStatusOutstanding, Price: 300},
	}

	rollups := ComputeRollups(properties, requests)
	require.Len(t, rollups, 1)

	rollup := rollups[0]
	require.Equal(t, 1000.0, rollup.TotalIncome)
	require.Equal(t, 200.0, rollup.TotalPaidExpenses)
	require.Equal(t, 50.0, rollup.RemainingUnpaidExpenses)
	require.Equal(t, 800.0, rollup.NetIncome)

	// The outstanding request contributes to no figure.
	require.Len(t, rollup.CompletedIssues, 2)
}

func TestComputeRollups_NetIncomeExcludesUnpaid(t *testing.T) {
	properties := []models.Property{
		{ID: "p1", Address: "3 King's Road", Price: 500},
	}
	requests := []models.MaintenanceRequest{
		{ID: "m1", PropertyID: "p1", Status: models.MaintenanceStatusCompleted, Price: 499, Paid: false},
	}

	rollups := ComputeRollups(properties, requests)
	require.Len(t, rollups, 1)
	require.Equal(t, 500.0, rollups[0].NetIncome)
	require.Equal(t, 499.0, rollups[0].RemainingUnpaidExpenses)
}

func TestComputeRollups_PropertyWithNoIssues(t *testing.T) {
	properties := []models.Property{
		{ID: "p1", Address: "8 Mill Lane", Price: 750},
	}

	rollups := ComputeRollups(properties, nil)
	require.Len(t, rollups, 1)
	require.Equal(t, 750.0, rollups[0].TotalIncome)
	require.Equal(t, 750.0, rollups[0].NetIncome)
	require.Empty(t, rollups[0].CompletedIssues)
}

func TestGroupIssuesByMonth(t *testing.T) {
	january := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	february := time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)

	issues := []models.MaintenanceRequest{
		{ID: "m1", UpdatedAt: february},
		{ID: "m2", UpdatedAt: january},
		{ID: "m3", UpdatedAt: february},
	}

	groups := GroupIssuesByMonth(issues, time.Now())
	require.Len(t, groups, 2)

	// Months appear in first-encounter order.
	require.Equal(t, "February 2025", groups[0].Month)
	require.Len(t, groups[0].Issues, 2)
	require.Equal(t, "January 2025", groups[1].Month)
	require.Len(t, groups[1].Issues, 1)
}

func TestGroupIssuesByMonth_ZeroTimestampFallsBackToNow(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	groups := GroupIssuesByMonth([]models.MaintenanceRequest{{ID: "m1"}}, now)
	require.Len(t, groups, 1)
	require.Equal(t, "June 2025", groups[0].Month)
}
