package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/propdesk/property-management-api/internal/errors"
	"github.com/propdesk/property-management-api/internal/services"
)

// DashboardHandler serves the landing-page overview.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetOverview returns counts, the maintenance status chart, stored financial
// summaries, upcoming lease expirations and the most recent tasks.
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.Overview()
	if err != nil {
		apierrors.InternalError(c, "Failed to build dashboard overview")
		return
	}

	c.JSON(http.StatusOK, overview)
}
