package repository

import (
	"github.com/propdesk/property-management-api/internal/models"
	"gorm.io/gorm"
)

// GormMaintenanceRepository is a GORM implementation of MaintenanceRepository
type GormMaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &GormMaintenanceRepository{db: db}
}

func (r *GormMaintenanceRepository) Create(request *models.MaintenanceRequest) error {
	return r.db.Create(request).Error
}

func (r *GormMaintenanceRepository) FindByID(id string) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *GormMaintenanceRepository) List() ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	if err := r.db.Order("created_at").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *GormMaintenanceRepository) ListCompletedByProperty(propertyID string) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := r.db.
		Where("property_id = ? AND status = ?", propertyID, models.MaintenanceStatusCompleted).
		Order("created_at").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *GormMaintenanceRepository) Update(request *models.MaintenanceRequest) error {
	return r.db.Save(request).Error
}

func (r *GormMaintenanceRepository) Delete(id string) error {
	return r.db.Delete(&models.MaintenanceRequest{}, "id = ?", id).Error
}

func (r *GormMaintenanceRepository) CountByStatus() (map[models.MaintenanceStatus]int64, error) {
	type statusCount struct {
		Status models.MaintenanceStatus
		Total  int64
	}
	var rows []statusCount
	err := r.db.Model(&models.MaintenanceRequest{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[models.MaintenanceStatus]int64{
		models.MaintenanceStatusOutstanding: 0,
		models.MaintenanceStatusCompleted:   0,
		models.MaintenanceStatusFailed:      0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
