package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/propdesk/property-management-api/internal/constants"
	"github.com/propdesk/property-management-api/internal/dto"
	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/reports"
	"github.com/propdesk/property-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidStatus       = errors.New("invalid maintenance status")
)

// MaintenanceService handles the triage board and maintenance request CRUD.
type MaintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	propertyRepo    repository.PropertyRepository
	tenantRepo      repository.TenantRepository
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, propertyRepo repository.PropertyRepository, tenantRepo repository.TenantRepository) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		tenantRepo:      tenantRepo,
	}
}

// Board partitions every request into the three status buckets, with
// addresses resolved, filtered by the free-text query.
func (s *MaintenanceService) Board(query string) (reports.TriageBoard, error) {
	requests, err := s.maintenanceRepo.List()
	if err != nil {
		return reports.TriageBoard{}, fmt.Errorf("failed to list maintenance requests: %w", err)
	}
	properties, err := s.propertyRepo.List()
	if err != nil {
		return reports.TriageBoard{}, fmt.Errorf("failed to list properties: %w", err)
	}

	board := reports.BuildTriageBoard(requests, properties)
	return reports.FilterBoard(board, query), nil
}

// Detail resolves the request's property and tenant for the detail modal.
func (s *MaintenanceService) Detail(id string) (*dto.MaintenanceDetail, error) {
	request, err := s.maintenanceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance request: %w", err)
	}

	detail := &dto.MaintenanceDetail{
		MaintenanceRequest: *request,
		PropertyAddress:    constants.PlaceholderNoAddress,
	}
	if request.PropertyID != "" {
		if property, err := s.propertyRepo.FindByID(request.PropertyID); err == nil {
			detail.PropertyAddress = property.Address
			detail.KeyNumber = property.KeyNumber
		}
	}
	if request.TenantID != "" {
		if tenant, err := s.tenantRepo.FindByID(request.TenantID); err == nil {
			detail.Tenant = tenant
		}
	}
	return detail, nil
}

// CreateMaintenanceInput represents input for creating or updating a request
type CreateMaintenanceInput struct {
	PropertyID  string
	TenantID    string
	Description string
	Status      models.MaintenanceStatus
	Price       float64
	Paid        bool
}

func validateMaintenanceStatus(status models.MaintenanceStatus) error {
	switch status {
	case models.MaintenanceStatusOutstanding,
		models.MaintenanceStatusCompleted,
		models.MaintenanceStatusFailed:
		return nil
	}
	return ErrInvalidStatus
}

// Create records a new maintenance request. Price defaults to 0.
func (s *MaintenanceService) Create(input CreateMaintenanceInput) (*models.MaintenanceRequest, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if input.Status == "" {
		input.Status = models.MaintenanceStatusOutstanding
	}
	if err := validateMaintenanceStatus(input.Status); err != nil {
		return nil, err
	}

	request := &models.MaintenanceRequest{
		PropertyID:  input.PropertyID,
		TenantID:    input.TenantID,
		Description: input.Description,
		Status:      input.Status,
		Price:       input.Price,
		Paid:        input.Paid,
	}
	if err := s.maintenanceRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create maintenance request: %w", err)
	}
	return request, nil
}

// Update overwrites a request's editable fields.
func (s *MaintenanceService) Update(id string, input CreateMaintenanceInput) (*models.MaintenanceRequest, error) {
	request, err := s.maintenanceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance request: %w", err)
	}

	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if err := validateMaintenanceStatus(input.Status); err != nil {
		return nil, err
	}

	request.PropertyID = input.PropertyID
	request.TenantID = input.TenantID
	request.Description = input.Description
	request.Status = input.Status
	request.Price = input.Price
	request.Paid = input.Paid

	if err := s.maintenanceRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}
	return request, nil
}

// Delete removes a request immediately; there is no undo.
func (s *MaintenanceService) Delete(id string) error {
	if _, err := s.maintenanceRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIssueNotFound
		}
		return fmt.Errorf("failed to find maintenance request: %w", err)
	}
	return s.maintenanceRepo.Delete(id)
}
