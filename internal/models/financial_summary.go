package models

import "time"

// FinancialSummary is the persisted rollup for one property, keyed by the
// property's own ID. It is fully derived: the payment write-back recomputes
// every figure and it is never edited by hand. The dashboard reads it as-is;
// the financials report recomputes from source records instead.
type FinancialSummary struct {
	PropertyID              string    `gorm:"type:varchar(36);primarykey" json:"property_id"`
	TotalIncome             float64   `json:"total_income"`
	TotalPaidExpenses       float64   `json:"total_paid_expenses"`
	RemainingUnpaidExpenses float64   `json:"remaining_unpaid_expenses"`
	NetIncome               float64   `json:"net_income"`
	LastUpdated             time.Time `json:"last_updated"`
}

func (FinancialSummary) TableName() string {
	return "financials"
}
