package dto

import "github.com/propdesk/property-management-api/internal/models"

// StatusCount is one slice of the maintenance overview chart.
type StatusCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// FinancialOverviewRow is one bar group of the financial overview chart,
// read from the stored (derived) financials rows.
type FinancialOverviewRow struct {
	PropertyAddress         string  `json:"property_address"`
	TotalIncome             float64 `json:"total_income"`
	RemainingUnpaidExpenses float64 `json:"remaining_unpaid_expenses"`
	TotalPaidExpenses       float64 `json:"total_paid_expenses"`
	NetIncome               float64 `json:"net_income"`
}

// LeaseExpiration is one upcoming lease end.
type LeaseExpiration struct {
	PropertyAddress string `json:"property_address"`
	EndDate         string `json:"end_date"`
}

// DashboardOverview bundles everything the dashboard renders.
type DashboardOverview struct {
	PropertiesCount  int64                  `json:"properties_count"`
	TenantsCount     int64                  `json:"tenants_count"`
	MaintenanceStats []StatusCount          `json:"maintenance_stats"`
	Financials       []FinancialOverviewRow `json:"financials"`
	LeaseExpirations []LeaseExpiration      `json:"lease_expirations"`
	RecentTasks      []models.Task          `json:"recent_tasks"`
}
