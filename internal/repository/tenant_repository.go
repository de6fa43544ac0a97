package repository

import (
	"github.com/propdesk/property-management-api/internal/models"
	"gorm.io/gorm"
)

// GormTenantRepository is a GORM implementation of TenantRepository
type GormTenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new TenantRepository
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &GormTenantRepository{db: db}
}

func (r *GormTenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

func (r *GormTenantRepository) FindByID(id string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *GormTenantRepository) List() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := r.db.Order("created_at").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *GormTenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

func (r *GormTenantRepository) Delete(id string) error {
	return r.db.Delete(&models.Tenant{}, "id = ?", id).Error
}

func (r *GormTenantRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tenant{}).Count(&count).Error
	return count, err
}
