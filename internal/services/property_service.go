package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/reports"
	"github.com/propdesk/property-management-api/internal/repository"
	"gorm.io/gorm"
)

var ErrAddressRequired = errors.New("address is required")

// PropertyService handles property business logic.
type PropertyService struct {
	propertyRepo repository.PropertyRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo repository.PropertyRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
	}
}

// List returns every property matching the free-text query; empty query
// keeps all.
func (s *PropertyService) List(query string) ([]models.Property, error) {
	properties, err := s.propertyRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	if query == "" {
		return properties, nil
	}

	var kept []models.Property
	for _, property := range properties {
		if reports.MatchesQuery(property, query) {
			kept = append(kept, property)
		}
	}
	return kept, nil
}

// GetProperty returns one property.
func (s *PropertyService) GetProperty(id string) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	return property, nil
}

// CreatePropertyInput represents input for creating or updating a property
type CreatePropertyInput struct {
	PropertyName     string
	Address          string
	Description      string
	OwnerName        string
	OwnerPhoneNumber string
	OwnerEmail       string
	Postcode         string
	Price            float64
	Status           []string
	Type             []string
	Bedrooms         int
	Bathrooms        int
	Size             int
	KeyNumber        string
}

// Create creates a new property. Price is the monthly rental income used by
// the financial report.
func (s *PropertyService) Create(input CreatePropertyInput) (*models.Property, error) {
	if strings.TrimSpace(input.Address) == "" {
		return nil, ErrAddressRequired
	}

	property := &models.Property{
		PropertyName:     input.PropertyName,
		Address:          strings.TrimSpace(input.Address),
		Description:      input.Description,
		OwnerName:        input.OwnerName,
		OwnerPhoneNumber: input.OwnerPhoneNumber,
		OwnerEmail:       input.OwnerEmail,
		Postcode:         input.Postcode,
		Price:            input.Price,
		Status:           input.Status,
		Type:             input.Type,
		Bedrooms:         input.Bedrooms,
		Bathrooms:        input.Bathrooms,
		Size:             input.Size,
		KeyNumber:        input.KeyNumber,
	}
	if err := s.propertyRepo.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

// Update overwrites a property's editable fields.
func (s *PropertyService) Update(id string, input CreatePropertyInput) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	if strings.TrimSpace(input.Address) == "" {
		return nil, ErrAddressRequired
	}

	property.PropertyName = input.PropertyName
	property.Address = strings.TrimSpace(input.Address)
	property.Description = input.Description
	property.OwnerName = input.OwnerName
	property.OwnerPhoneNumber = input.OwnerPhoneNumber
	property.OwnerEmail = input.OwnerEmail
	property.Postcode = input.Postcode
	property.Price = input.Price
	property.Status = input.Status
	property.Type = input.Type
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.Size = input.Size
	property.KeyNumber = input.KeyNumber

	if err := s.propertyRepo.Update(property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return property, nil
}

// Delete removes a property. Tenants, leases and maintenance requests that
// reference it stay behind; views render placeholders where the reference no
// longer resolves.
func (s *PropertyService) Delete(id string) error {
	if _, err := s.propertyRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("failed to find property: %w", err)
	}
	return s.propertyRepo.Delete(id)
}
