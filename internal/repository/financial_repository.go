package repository

import (
	"errors"
	"fmt"

	"github.com/propdesk/property-management-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrUpdatePaidFlag is returned when flipping a request's paid flag fails
	// inside the write-back transaction.
	ErrUpdatePaidFlag = errors.New("financial repository: update paid flag failed")
	// ErrSaveSummary is returned when persisting a recomputed summary fails
	// inside the write-back transaction.
	ErrSaveSummary = errors.New("financial repository: save summary failed")
)

// GormFinancialRepository is a GORM implementation of FinancialRepository
type GormFinancialRepository struct {
	db *gorm.DB
}

// NewFinancialRepository creates a new FinancialRepository
func NewFinancialRepository(db *gorm.DB) FinancialRepository {
	return &GormFinancialRepository{db: db}
}

func (r *GormFinancialRepository) FindByPropertyID(propertyID string) (*models.FinancialSummary, error) {
	var summary models.FinancialSummary
	if err := r.db.First(&summary, "property_id = ?", propertyID).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *GormFinancialRepository) List() ([]models.FinancialSummary, error) {
	var summaries []models.FinancialSummary
	if err := r.db.Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// ApplyPaymentChanges runs the payment write-back as a single transaction:
// each changed request's paid flag, then the recomputed summary of every
// property that had at least one change. Either everything lands or nothing
// does.
func (r *GormFinancialRepository) ApplyPaymentChanges(paidByRequestID map[string]bool, summaries []models.FinancialSummary) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for id, paid := range paidByRequestID {
			err := tx.Model(&models.MaintenanceRequest{}).
				Where("id = ?", id).
				Update("paid", paid).Error
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUpdatePaidFlag, err)
			}
		}

		for i := range summaries {
			if err := tx.Save(&summaries[i]).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrSaveSummary, err)
			}
		}

		return nil
	})
}
