package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/propdesk/property-management-api/internal/database"
	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/reports"
	"github.com/propdesk/property-management-api/internal/repository"
	"github.com/propdesk/property-management-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type maintenanceTestEnv struct {
	db      *gorm.DB
	handler *MaintenanceHandler
	router  *gin.Engine
}

func setupMaintenanceTestEnv(t *testing.T) maintenanceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Property{},
		&models.Tenant{},
		&models.MaintenanceRequest{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	service := services.NewMaintenanceService(
		repository.NewMaintenanceRepository(db),
		repository.NewPropertyRepository(db),
		repository.NewTenantRepository(db),
	)
	handler := NewMaintenanceHandler(service)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/maintenance/board", handler.GetBoard)
	router.POST("/api/maintenance", handler.CreateRequest)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return maintenanceTestEnv{db: db, handler: handler, router: router}
}

func TestMaintenanceHandler_GetBoard(t *testing.T) {
	env := setupMaintenanceTestEnv(t)

	property := models.Property{Address: "12 Harbour Street", Price: 1000}
	require.NoError(t, env.db.Create(&property).Error)

	requests := []models.MaintenanceRequest{
		{PropertyID: property.ID, Description: "Leaking tap", Status: models.MaintenanceStatusOutstanding},
		{PropertyID: property.ID, Description: "Boiler service", Status: models.MaintenanceStatusCompleted},
		{PropertyID: "gone", Description: "Broken fence", Status: models.MaintenanceStatusFailed},
	}
	for i := range requests {
		require.NoError(t, env.db.Create(&requests[i]).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/board", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var board reports.TriageBoard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board.Outstanding, 1)
	require.Len(t, board.Completed, 1)
	require.Len(t, board.FailedDeferred, 1)
	require.Equal(t, "12 Harbour Street", board.Outstanding[0].PropertyAddress)
	require.Equal(t, "No address available", board.FailedDeferred[0].PropertyAddress)

	// The free-text query filters on the resolved address too.
	req = httptest.NewRequest(http.MethodGet, "/api/maintenance/board?q=harbour", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board.Outstanding, 1)
	require.Empty(t, board.FailedDeferred)
}

func TestMaintenanceHandler_CreateRequest_DefaultStatus(t *testing.T) {
	env := setupMaintenanceTestEnv(t)

	w := postJSON(t, env.router, "/api/maintenance", map[string]any{
		"description": "Leaking tap",
		"price":       80,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var request models.MaintenanceRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &request))
	require.Equal(t, models.MaintenanceStatusOutstanding, request.Status)
	require.False(t, request.Paid)
}

func TestMaintenanceHandler_CreateRequest_InvalidStatus(t *testing.T) {
	env := setupMaintenanceTestEnv(t)

	w := postJSON(t, env.router, "/api/maintenance", map[string]any{
		"description": "Leaking tap",
		"status":      "Pending",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}
