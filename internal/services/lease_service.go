package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/repository"
	"github.com/propdesk/property-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrLeaseNotFound    = errors.New("lease not found")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// LeaseService handles lease business logic.
type LeaseService struct {
	leaseRepo repository.LeaseRepository
}

// NewLeaseService creates a new LeaseService
func NewLeaseService(leaseRepo repository.LeaseRepository) *LeaseService {
	return &LeaseService{
		leaseRepo: leaseRepo,
	}
}

// List returns all leases in creation order.
func (s *LeaseService) List() ([]models.Lease, error) {
	return s.leaseRepo.List()
}

// ListPage returns one page of leases plus the total count.
func (s *LeaseService) ListPage(params utils.PaginationParams) ([]models.Lease, int64, error) {
	return s.leaseRepo.ListPage(params)
}

// GetLease returns one lease.
func (s *LeaseService) GetLease(id string) (*models.Lease, error) {
	lease, err := s.leaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaseNotFound
		}
		return nil, fmt.Errorf("failed to find lease: %w", err)
	}
	return lease, nil
}

// CreateLeaseInput represents input for creating or updating a lease
type CreateLeaseInput struct {
	PropertyID string
	TenantID   string
	StartDate  time.Time
	EndDate    time.Time
	Rent       float64
	Deposit    float64
	Terms      string
}

// Create records a new lease. Overlapping leases for the same tenant are
// allowed; views pick the most recently created qualifying lease as active.
func (s *LeaseService) Create(input CreateLeaseInput) (*models.Lease, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	lease := &models.Lease{
		PropertyID: input.PropertyID,
		TenantID:   input.TenantID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Rent:       input.Rent,
		Deposit:    input.Deposit,
		Terms:      input.Terms,
	}
	if err := s.leaseRepo.Create(lease); err != nil {
		return nil, fmt.Errorf("failed to create lease: %w", err)
	}
	return lease, nil
}

// Update overwrites a lease's editable fields.
func (s *LeaseService) Update(id string, input CreateLeaseInput) (*models.Lease, error) {
	lease, err := s.leaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaseNotFound
		}
		return nil, fmt.Errorf("failed to find lease: %w", err)
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	lease.PropertyID = input.PropertyID
	lease.TenantID = input.TenantID
	lease.StartDate = input.StartDate
	lease.EndDate = input.EndDate
	lease.Rent = input.Rent
	lease.Deposit = input.Deposit
	lease.Terms = input.Terms

	if err := s.leaseRepo.Update(lease); err != nil {
		return nil, fmt.Errorf("failed to update lease: %w", err)
	}
	return lease, nil
}

// Delete removes a lease.
func (s *LeaseService) Delete(id string) error {
	if _, err := s.leaseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeaseNotFound
		}
		return fmt.Errorf("failed to find lease: %w", err)
	}
	return s.leaseRepo.Delete(id)
}
