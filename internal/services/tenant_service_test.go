package services

import (
	"testing"
	"time"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type tenantTestEnv struct {
	db      *gorm.DB
	service *TenantService
}

func setupTenantTestEnv(t *testing.T) tenantTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Tenant{},
		&models.Property{},
		&models.Lease{},
	)
	require.NoError(t, err)

	service := NewTenantService(
		repository.NewTenantRepository(db),
		repository.NewPropertyRepository(db),
		repository.NewLeaseRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return tenantTestEnv{db: db, service: service}
}

func TestTenantService_Roster(t *testing.T) {
	env := setupTenantTestEnv(t)

	property := models.Property{Address: "12 Harbour Street", Price: 1000}
	require.NoError(t, env.db.Create(&property).Error)

	ada := models.Tenant{FirstName: "Ada", LastName: "Byrne", PropertyID: property.ID}
	rhys := models.Tenant{FirstName: "Rhys", LastName: "Owen"}
	require.NoError(t, env.db.Create(&ada).Error)
	require.NoError(t, env.db.Create(&rhys).Error)

	lease := models.Lease{
		PropertyID: property.ID,
		TenantID:   ada.ID,
		StartDate:  time.Now().AddDate(0, -1, 0),
		EndDate:    time.Now().AddDate(0, 11, 0),
	}
	require.NoError(t, env.db.Create(&lease).Error)

	entries, err := env.service.Roster("")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "12 Harbour Street", entries[0].PropertyAddress)
	require.NotNil(t, entries[0].ActiveLease)
	require.Equal(t, "-", entries[1].PropertyAddress)

	// Free-text filter keeps matching tenants only.
	entries, err = env.service.Roster("rhys")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Rhys", entries[0].Tenant.FirstName)
}

func TestTenantService_Detail_DanglingPropertyReference(t *testing.T) {
	env := setupTenantTestEnv(t)

	property := models.Property{Address: "12 Harbour Street", Price: 1000}
	require.NoError(t, env.db.Create(&property).Error)

	tenant := models.Tenant{FirstName: "Ada", LastName: "Byrne", PropertyID: property.ID}
	require.NoError(t, env.db.Create(&tenant).Error)

	lease := models.Lease{
		PropertyID: property.ID,
		TenantID:   tenant.ID,
		StartDate:  time.Now().AddDate(-1, 0, 0),
		EndDate:    time.Now().AddDate(0, -1, 0),
	}
	require.NoError(t, env.db.Create(&lease).Error)

	// Deleting the property leaves the tenant and lease behind.
	require.NoError(t, env.db.Delete(&property).Error)

	detail, err := env.service.Detail(tenant.ID)
	require.NoError(t, err)
	require.Equal(t, "-", detail.PropertyAddress)
	require.Nil(t, detail.ActiveLease)
	require.Len(t, detail.Leases, 1)
	require.True(t, detail.Leases[0].IsExpired)
}

func TestTenantService_CreateValidation(t *testing.T) {
	env := setupTenantTestEnv(t)

	_, err := env.service.Create(CreateTenantInput{FirstName: " ", LastName: "Byrne"})
	require.ErrorIs(t, err, ErrNameRequired)

	tenant, err := env.service.Create(CreateTenantInput{FirstName: "Ada", LastName: "Byrne"})
	require.NoError(t, err)
	require.NotEmpty(t, tenant.ID)
}

func TestTenantService_DeleteUnknown(t *testing.T) {
	env := setupTenantTestEnv(t)

	require.ErrorIs(t, env.service.Delete("missing"), ErrTenantNotFound)
}
