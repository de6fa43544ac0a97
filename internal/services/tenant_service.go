package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/propdesk/property-management-api/internal/constants"
	"github.com/propdesk/property-management-api/internal/dto"
	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/reports"
	"github.com/propdesk/property-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrNameRequired   = errors.New("first and last name are required")
)

// TenantService handles tenant business logic, including the roster view.
type TenantService struct {
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
	leaseRepo    repository.LeaseRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo repository.TenantRepository, propertyRepo repository.PropertyRepository, leaseRepo repository.LeaseRepository) *TenantService {
	return &TenantService{
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		leaseRepo:    leaseRepo,
	}
}

// Roster returns every tenant enriched with property address and active
// lease. Rows matching the free-text query are kept; empty query keeps all.
func (s *TenantService) Roster(query string) ([]reports.RosterEntry, error) {
	tenants, err := s.tenantRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	properties, err := s.propertyRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	leases, err := s.leaseRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}

	entries := reports.BuildRoster(tenants, properties, leases, time.Now())
	if query == "" {
		return entries, nil
	}

	var kept []reports.RosterEntry
	for _, entry := range entries {
		if reports.MatchesQuery(entry.Tenant, query) {
			kept = append(kept, entry)
		}
	}
	return kept, nil
}

// Detail returns the detail-panel view of one tenant: address, active lease,
// and full lease history with expired flags. Rent on history rows comes from
// the property price when the property still resolves.
func (s *TenantService) Detail(id string) (*dto.TenantDetail, error) {
	tenant, err := s.tenantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	detail := &dto.TenantDetail{
		Tenant:          *tenant,
		PropertyAddress: constants.PlaceholderDash,
	}
	if tenant.PropertyID != "" {
		if property, err := s.propertyRepo.FindByID(tenant.PropertyID); err == nil {
			detail.PropertyAddress = property.Address
		}
	}

	leases, err := s.leaseRepo.ListByTenant(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}

	now := time.Now()
	detail.ActiveLease = reports.ActiveLease(leases, now)

	detail.Leases = make([]dto.LeaseHistoryEntry, 0, len(leases))
	for _, lease := range leases {
		entry := dto.LeaseHistoryEntry{
			Lease:     lease,
			IsExpired: lease.ExpiredAt(now),
		}
		if lease.PropertyID != "" {
			if property, err := s.propertyRepo.FindByID(lease.PropertyID); err == nil {
				entry.Rent = property.Price
			}
		}
		detail.Leases = append(detail.Leases, entry)
	}

	return detail, nil
}

// CreateTenantInput represents input for creating or updating a tenant
type CreateTenantInput struct {
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string
	PropertyID    string
}

// Create creates a new tenant.
func (s *TenantService) Create(input CreateTenantInput) (*models.Tenant, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, ErrNameRequired
	}

	tenant := &models.Tenant{
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         input.Email,
		ContactNumber: input.ContactNumber,
		PropertyID:    input.PropertyID,
	}
	if err := s.tenantRepo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return tenant, nil
}

// Update overwrites a tenant's editable fields.
func (s *TenantService) Update(id string, input CreateTenantInput) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, ErrNameRequired
	}

	tenant.FirstName = strings.TrimSpace(input.FirstName)
	tenant.LastName = strings.TrimSpace(input.LastName)
	tenant.Email = input.Email
	tenant.ContactNumber = input.ContactNumber
	tenant.PropertyID = input.PropertyID

	if err := s.tenantRepo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return tenant, nil
}

// Delete removes a tenant. Leases and maintenance requests that reference
// the tenant stay behind.
func (s *TenantService) Delete(id string) error {
	if _, err := s.tenantRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("failed to find tenant: %w", err)
	}
	return s.tenantRepo.Delete(id)
}
