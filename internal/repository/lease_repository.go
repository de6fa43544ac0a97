package repository

import (
	"time"

	"github.com/propdesk/property-management-api/internal/database"
	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormLeaseRepository is a GORM implementation of LeaseRepository
type GormLeaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository creates a new LeaseRepository
func NewLeaseRepository(db *gorm.DB) LeaseRepository {
	return &GormLeaseRepository{db: db}
}

func (r *GormLeaseRepository) Create(lease *models.Lease) error {
	return r.db.Create(lease).Error
}

func (r *GormLeaseRepository) FindByID(id string) (*models.Lease, error) {
	var lease models.Lease
	if err := r.db.First(&lease, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lease, nil
}

func (r *GormLeaseRepository) List() ([]models.Lease, error) {
	var leases []models.Lease
	if err := r.db.Order("created_at").Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (r *GormLeaseRepository) ListPage(params utils.PaginationParams) ([]models.Lease, int64, error) {
	var total int64
	if err := r.db.Model(&models.Lease{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leases []models.Lease
	err := r.db.Order("created_at").
		Scopes(database.Paginate(params)).
		Find(&leases).Error
	if err != nil {
		return nil, 0, err
	}
	return leases, total, nil
}

func (r *GormLeaseRepository) ListByTenant(tenantID string) ([]models.Lease, error) {
	var leases []models.Lease
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at").Find(&leases).Error
	if err != nil {
		return nil, err
	}
	return leases, nil
}

func (r *GormLeaseRepository) ListEndingOnOrAfter(t time.Time) ([]models.Lease, error) {
	var leases []models.Lease
	err := r.db.Where("end_date >= ?", t).Order("end_date").Find(&leases).Error
	if err != nil {
		return nil, err
	}
	return leases, nil
}

func (r *GormLeaseRepository) Update(lease *models.Lease) error {
	return r.db.Save(lease).Error
}

func (r *GormLeaseRepository) Delete(id string) error {
	return r.db.Delete(&models.Lease{}, "id = ?", id).Error
}
