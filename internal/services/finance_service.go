package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/reports"
	"github.com/propdesk/property-management-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrNoChanges        = errors.New("no payment changes provided")
	ErrIssueNotFound    = errors.New("maintenance request not found")
)

// FinanceService computes the per-property rollups and runs the payment
// write-back.
type FinanceService struct {
	propertyRepo    repository.PropertyRepository
	maintenanceRepo repository.MaintenanceRepository
	financialRepo   repository.FinancialRepository
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(propertyRepo repository.PropertyRepository, maintenanceRepo repository.MaintenanceRepository, financialRepo repository.FinancialRepository) *FinanceService {
	return &FinanceService{
		propertyRepo:    propertyRepo,
		maintenanceRepo: maintenanceRepo,
		financialRepo:   financialRepo,
	}
}

// Report recomputes the rollup for every property whose address contains the
// query (case-insensitive); empty query keeps all. Stored financials rows are
// ignored here: the report always derives from source records.
func (s *FinanceService) Report(query string) ([]reports.PropertyRollup, error) {
	properties, err := s.propertyRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	if query != "" {
		needle := strings.ToLower(query)
		var kept []models.Property
		for _, p := range properties {
			if strings.Contains(strings.ToLower(p.Address), needle) {
				kept = append(kept, p)
			}
		}
		properties = kept
	}

	requests, err := s.maintenanceRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}

	return reports.ComputeRollups(properties, requests), nil
}

// IssuesByMonth returns a property's completed maintenance issues grouped by
// calendar month of last update, for the detail modal.
func (s *FinanceService) IssuesByMonth(propertyID string) ([]reports.MonthGroup, error) {
	if _, err := s.propertyRepo.FindByID(propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	issues, err := s.maintenanceRepo.ListCompletedByProperty(propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed requests: %w", err)
	}

	return reports.GroupIssuesByMonth(issues, time.Now()), nil
}

// SavePaymentChanges applies the operator's paid/unpaid toggles. Only
// properties with at least one changed request get their financials row
// rewritten; everything lands in one transaction.
func (s *FinanceService) SavePaymentChanges(paidByRequestID map[string]bool) error {
	if len(paidByRequestID) == 0 {
		return ErrNoChanges
	}

	// Resolve which properties the changed requests belong to.
	changedProperties := make(map[string]bool)
	for id := range paidByRequestID {
		request, err := s.maintenanceRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIssueNotFound
			}
			return fmt.Errorf("failed to find maintenance request: %w", err)
		}
		if request.PropertyID != "" {
			changedProperties[request.PropertyID] = true
		}
	}

	now := time.Now()
	var summaries []models.FinancialSummary
	for propertyID := range changedProperties {
		property, err := s.propertyRepo.FindByID(propertyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Dangling reference: still flip the paid flags, but there is
				// no financials row to rewrite for a deleted property.
				zap.L().Warn("Payment change against deleted property",
					zap.String("property_id", propertyID))
				continue
			}
			return fmt.Errorf("failed to find property: %w", err)
		}

		issues, err := s.maintenanceRepo.ListCompletedByProperty(propertyID)
		if err != nil {
			return fmt.Errorf("failed to list completed requests: %w", err)
		}

		summary := models.FinancialSummary{
			PropertyID:  propertyID,
			TotalIncome: property.Price,
			LastUpdated: now,
		}
		for _, issue := range issues {
			paid := issue.Paid
			if changed, ok := paidByRequestID[issue.ID]; ok {
				paid = changed
			}
			if paid {
				summary.TotalPaidExpenses += issue.Price
			} else {
				summary.RemainingUnpaidExpenses += issue.Price
			}
		}
		summary.NetIncome = summary.TotalIncome - summary.TotalPaidExpenses
		summaries = append(summaries, summary)
	}

	if err := s.financialRepo.ApplyPaymentChanges(paidByRequestID, summaries); err != nil {
		zap.L().Error("Payment write-back failed", zap.Error(err))
		return err
	}
	return nil
}
