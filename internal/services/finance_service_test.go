package services

import (
	"testing"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type financeTestEnv struct {
	db      *gorm.DB
	service *FinanceService
}

func setupFinanceTestEnv(t *testing.T) financeTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Property{},
		&models.MaintenanceRequest{},
		&models.FinancialSummary{},
	)
	require.NoError(t, err)

	service := NewFinanceService(
		repository.NewPropertyRepository(db),
		repository.NewMaintenanceRepository(db),
		repository.NewFinancialRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return financeTestEnv{db: db, service: service}
}

func TestFinanceService_Report(t *testing.T) {
	env := setupFinanceTestEnv(t)

	property := models.Property{Address: "12 Harbour Street", Price: 1000}
	require.NoError(t, env.db.Create(&property).Error)

	requests := []models.MaintenanceRequest{
		{PropertyID: property.ID, Description: "Boiler", Status: models.MaintenanceStatusCompleted, Price: 200, Paid: true},
		{PropertyID: property.ID, Description: "Roof", Status: models.MaintenanceStatusCompleted, Price: 50, Paid: false},
		{PropertyID: property.ID, Description: "Fence", Status: models.MaintenanceStatusOutstanding, Price: 300},
	}
	for i := range requests {
		require.NoError(t, env.db.Create(&requests[i]).Error)
	}

	rollups, err := env.service.Report("")
	require.NoError(t, err)
	require.Len(t, rollups, 1)
	require.Equal(t, 1000.0, rollups[0].TotalIncome)
	require.Equal(t, 200.0, rollups[0].TotalPaidExpenses)
	require.Equal(t, 50.0, rollups[0].RemainingUnpaidExpenses)
	require.Equal(t, 800.0, rollups[0].NetIncome)

	// Address substring filter drops non-matching properties.
	rollups, err = env.service.Report("king's road")
	require.NoError(t, err)
	require.Empty(t, rollups)
}

func TestFinanceService_SavePaymentChanges(t *testing.T) {
	env := setupFinanceTestEnv(t)

	changed := models.Property{Address: "12 Harbour Street", Price: 1000}
	untouched := models.Property{Address: "3 King's Road", Price: 500}
	require.NoError(t, env.db.Create(&changed).Error)
	require.NoError(t, env.db.Create(&untouched).Error)

	toggled := models.MaintenanceRequest{
		PropertyID: changed.ID, Description: "Boiler",
		Status: models.MaintenanceStatusCompleted, Price: 200, Paid: false,
	}
	other := models.MaintenanceRequest{
		PropertyID: untouched.ID, Description: "Roof",
		Status: models.MaintenanceStatusCompleted, Price: 100, Paid: false,
	}
	require.NoError(t, env.db.Create(&toggled).Error)
	require.NoError(t, env.db.Create(&other).Error)

	err := env.service.SavePaymentChanges(map[string]bool{toggled.ID: true})
	require.NoError(t, err)

	var reloaded models.MaintenanceRequest
	require.NoError(t, env.db.First(&reloaded, "id = ?", toggled.ID).Error)
	require.True(t, reloaded.Paid)

	var summary models.FinancialSummary
	require.NoError(t, env.db.First(&summary, "property_id = ?", changed.ID).Error)
	require.Equal(t, 1000.0, summary.TotalIncome)
	require.Equal(t, 200.0, summary.TotalPaidExpenses)
	require.Equal(t, 0.0, summary.RemainingUnpaidExpenses)
	require.Equal(t, 800.0, summary.NetIncome)

	// The property with no changed requests gets no summary row.
	var count int64
	require.NoError(t, env.db.Model(&models.FinancialSummary{}).
		Where("property_id = ?", untouched.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestFinanceService_SavePaymentChanges_DeletedProperty(t *testing.T) {
	env := setupFinanceTestEnv(t)

	property := models.Property{Address: "12 Harbour Street", Price: 1000}
	require.NoError(t, env.db.Create(&property).Error)

	request := models.MaintenanceRequest{
		PropertyID: property.ID, Description: "Boiler",
		Status: models.MaintenanceStatusCompleted, Price: 200, Paid: false,
	}
	require.NoError(t, env.db.Create(&request).Error)

	require.NoError(t, env.db.Delete(&property).Error)

	// The flag still flips; there is just no financials row to rewrite.
	err := env.service.SavePaymentChanges(map[string]bool{request.ID: true})
	require.NoError(t, err)

	var reloaded models.MaintenanceRequest
	require.NoError(t, env.db.First(&reloaded, "id = ?", request.ID).Error)
	require.True(t, reloaded.Paid)

	var count int64
	require.NoError(t, env.db.Model(&models.FinancialSummary{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestFinanceService_SavePaymentChanges_Validation(t *testing.T) {
	env := setupFinanceTestEnv(t)

	require.ErrorIs(t, env.service.SavePaymentChanges(nil), ErrNoChanges)
	require.ErrorIs(t, env.service.SavePaymentChanges(map[string]bool{"missing": true}), ErrIssueNotFound)
}

func TestFinanceService_IssuesByMonth_UnknownProperty(t *testing.T) {
	env := setupFinanceTestEnv(t)

	_, err := env.service.IssuesByMonth("missing")
	require.ErrorIs(t, err, ErrPropertyNotFound)
}
