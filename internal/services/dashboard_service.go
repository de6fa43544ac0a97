package services

import (
	"fmt"
	"time"

	"github.com/propdesk/property-management-api/internal/constants"
	"github.com/propdesk/property-management-api/internal/dto"
	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/repository"
)

// DashboardService assembles the landing-page overview: record counts, the
// maintenance status chart, the stored financial summaries and upcoming lease
// expirations.
type DashboardService struct {
	propertyRepo    repository.PropertyRepository
	tenantRepo      repository.TenantRepository
	leaseRepo       repository.LeaseRepository
	maintenanceRepo repository.MaintenanceRepository
	financialRepo   repository.FinancialRepository
	taskRepo        repository.TaskRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	propertyRepo repository.PropertyRepository,
	tenantRepo repository.TenantRepository,
	leaseRepo repository.LeaseRepository,
	maintenanceRepo repository.MaintenanceRepository,
	financialRepo repository.FinancialRepository,
	taskRepo repository.TaskRepository,
) *DashboardService {
	return &DashboardService{
		propertyRepo:    propertyRepo,
		tenantRepo:      tenantRepo,
		leaseRepo:       leaseRepo,
		maintenanceRepo: maintenanceRepo,
		financialRepo:   financialRepo,
		taskRepo:        taskRepo,
	}
}

// Overview builds the full dashboard payload. The financial chart reads the
// stored summaries written by the payment write-back rather than recomputing,
// so it reflects the last saved state.
func (s *DashboardService) Overview() (*dto.DashboardOverview, error) {
	overview := &dto.DashboardOverview{}

	var err error
	if overview.PropertiesCount, err = s.propertyRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}
	if overview.TenantsCount, err = s.tenantRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count tenants: %w", err)
	}

	statusCounts, err := s.maintenanceRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count maintenance requests: %w", err)
	}
	for _, status := range []models.MaintenanceStatus{
		models.MaintenanceStatusOutstanding,
		models.MaintenanceStatusCompleted,
		models.MaintenanceStatusFailed,
	} {
		overview.MaintenanceStats = append(overview.MaintenanceStats, dto.StatusCount{
			Name:  string(status),
			Value: statusCounts[status],
		})
	}

	overview.Financials, err = s.financialOverview()
	if err != nil {
		return nil, err
	}

	overview.LeaseExpirations, err = s.leaseExpirations(time.Now())
	if err != nil {
		return nil, err
	}

	overview.RecentTasks, err = s.taskRepo.ListRecent(constants.RecentTaskLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent tasks: %w", err)
	}

	return overview, nil
}

func (s *DashboardService) financialOverview() ([]dto.FinancialOverviewRow, error) {
	summaries, err := s.financialRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list financial summaries: %w", err)
	}

	rows := make([]dto.FinancialOverviewRow, 0, len(summaries))
	for _, summary := range summaries {
		address := constants.PlaceholderUnknown
		if property, err := s.propertyRepo.FindByID(summary.PropertyID); err == nil {
			address = property.Address
		}
		rows = append(rows, dto.FinancialOverviewRow{
			PropertyAddress:         address,
			TotalIncome:             summary.TotalIncome,
			RemainingUnpaidExpenses: summary.RemainingUnpaidExpenses,
			TotalPaidExpenses:       summary.TotalPaidExpenses,
			NetIncome:               summary.NetIncome,
		})
	}
	return rows, nil
}

func (s *DashboardService) leaseExpirations(now time.Time) ([]dto.LeaseExpiration, error) {
	leases, err := s.leaseRepo.ListEndingOnOrAfter(now)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}

	expirations := make([]dto.LeaseExpiration, 0, len(leases))
	for _, lease := range leases {
		address := constants.PlaceholderUnknown
		if lease.PropertyID != "" {
			if property, err := s.propertyRepo.FindByID(lease.PropertyID); err == nil {
				address = property.Address
			}
		}
		expirations = append(expirations, dto.LeaseExpiration{
			PropertyAddress: address,
			EndDate:         lease.EndDate.Format("2006-01-02"),
		})
	}
	return expirations, nil
}
