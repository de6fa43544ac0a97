package repository

import (
	"github.com/propdesk/property-management-api/internal/models"
	"gorm.io/gorm"
)

// GormPropertyRepository is a GORM implementation of PropertyRepository
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &GormPropertyRepository{db: db}
}

func (r *GormPropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

func (r *GormPropertyRepository) FindByID(id string) (*models.Property, error) {
	var property models.Property
	if err := r.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *GormPropertyRepository) List() ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.Order("created_at").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *GormPropertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}

// Delete soft deletes the property only. Tenants, leases and maintenance
// requests that reference it are left in place.
func (r *GormPropertyRepository) Delete(id string) error {
	return r.db.Delete(&models.Property{}, "id = ?", id).Error
}

func (r *GormPropertyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Property{}).Count(&count).Error
	return count, err
}
