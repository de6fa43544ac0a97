package reports

import (
	"github.com/propdesk/property-management-api/internal/constants"
	"github.com/propdesk/property-management-api/internal/models"
)

// IssueRow is a maintenance request with its property address resolved for
// display.
type IssueRow struct {
	models.MaintenanceRequest
	PropertyAddress string `json:"property_address"`
}

// TriageBoard partitions every maintenance request into the three fixed
// status buckets.
type TriageBoard struct {
	Outstanding    []IssueRow `json:"outstanding"`
	Completed      []IssueRow `json:"completed"`
	FailedDeferred []IssueRow `json:"failed_deferred"`
}

// BuildTriageBoard resolves addresses and partitions requests by status.
// Requests whose property no longer exists show "No address available".
// Statuses outside the three known buckets are dropped.
func BuildTriageBoard(requests []models.MaintenanceRequest, properties []models.Property) TriageBoard {
	addresses := make(map[string]string, len(properties))
	for _, p := range properties {
		addresses[p.ID] = p.Address
	}

	var board TriageBoard
	for _, r := range requests {
		row := IssueRow{
			MaintenanceRequest: r,
			PropertyAddress:    constants.PlaceholderNoAddress,
		}
		if addr, ok := addresses[r.PropertyID]; ok {
			row.PropertyAddress = addr
		}

		switch r.Status {
		case models.MaintenanceStatusOutstanding:
			board.Outstanding = append(board.Outstanding, row)
		case models.MaintenanceStatusCompleted:
			board.Completed = append(board.Completed, row)
		case models.MaintenanceStatusFailed:
			board.FailedDeferred = append(board.FailedDeferred, row)
		}
	}
	return board
}

// FilterBoard keeps only rows matching the free-text query. The resolved
// address takes part in the match, so searching by street works.
func FilterBoard(board TriageBoard, query string) TriageBoard {
	if query == "" {
		return board
	}
	return TriageBoard{
		Outstanding:    filterRows(board.Outstanding, query),
		Completed:      filterRows(board.Completed, query),
		FailedDeferred: filterRows(board.FailedDeferred, query),
	}
}

func filterRows(rows []IssueRow, query string) []IssueRow {
	var kept []IssueRow
	for _, row := range rows {
		if MatchesQuery(row, query) {
			kept = append(kept, row)
		}
	}
	return kept
}
