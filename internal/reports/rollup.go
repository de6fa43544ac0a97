package reports

import (
	"time"

	"github.com/propdesk/property-management-api/internal/constants"
	"github.com/propdesk/property-management-api/internal/models"
)

// PropertyRollup is the per-property financial view model. All figures are
// recomputed from source records; the stored financials row is never read
// here.
type PropertyRollup struct {
	PropertyID              string                      `json:"property_id"`
	Address                 string                      `json:"address"`
	TotalIncome             float64                     `json:"total_income"`
	TotalPaidExpenses       float64                     `json:"total_paid_expenses"`
	RemainingUnpaidExpenses float64                     `json:"remaining_unpaid_expenses"`
	NetIncome               float64                     `json:"net_income"`
	CompletedIssues         []models.MaintenanceRequest `json:"completed_issues"`
}

// ComputeRollups rolls completed maintenance costs up into per-property
// totals:
//
//	totalIncome             = property price
//	totalPaidExpenses       = sum of completed, paid issue prices
//	remainingUnpaidExpenses = sum of completed, unpaid issue prices
//	netIncome               = totalIncome - totalPaidExpenses
//
// Properties come back in input order; completed issues keep their fetch
// order within each rollup.
func ComputeRollups(properties []models.Property, requests []models.MaintenanceRequest) []PropertyRollup {
	completedByProperty := make(map[string][]models.MaintenanceRequest)
	for _, r := range requests {
		if r.Status != models.MaintenanceStatusCompleted {
			continue
		}
		completedByProperty[r.PropertyID] = append(completedByProperty[r.PropertyID], r)
	}

	rollups := make([]PropertyRollup, 0, len(properties))
	for _, p := range properties {
		rollup := PropertyRollup{
			PropertyID:      p.ID,
			Address:         p.Address,
			TotalIncome:     p.Price,
			CompletedIssues: completedByProperty[p.ID],
		}
		for _, issue := range rollup.CompletedIssues {
			if issue.Paid {
				rollup.TotalPaidExpenses += issue.Price
			} else {
				rollup.RemainingUnpaidExpenses += issue.Price
			}
		}
		rollup.NetIncome = rollup.TotalIncome - rollup.TotalPaidExpenses
		rollups = append(rollups, rollup)
	}
	return rollups
}

// MonthGroup is a bucket of maintenance issues falling in one calendar month.
type MonthGroup struct {
	Month  string                      `json:"month"`
	Issues []models.MaintenanceRequest `json:"issues"`
}

// GroupIssuesByMonth buckets issues by the calendar month of their last
// update, falling back to now for zero timestamps. Months appear in
// first-encounter order and issues keep their input order within a month.
func GroupIssuesByMonth(issues []models.MaintenanceRequest, now time.Time) []MonthGroup {
	var groups []MonthGroup
	index := make(map[string]int)

	for _, issue := range issues {
		updatedAt := issue.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = now
		}
		month := updatedAt.Format(constants.MonthKeyLayout)

		i, ok := index[month]
		if !ok {
			i = len(groups)
			index[month] = i
			groups = append(groups, MonthGroup{Month: month})
		}
		groups[i].Issues = append(groups[i].Issues, issue)
	}
	return groups
}
