package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/propdesk/property-management-api/internal/errors"
	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/services"
)

// MaintenanceHandler coordinates maintenance request HTTP handlers.
type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// MaintenanceRequestBody is the create/update body.
type MaintenanceRequestBody struct {
	PropertyID  string                   `json:"property_id"`
	TenantID    string                   `json:"tenant_id"`
	Description string                   `json:"description" binding:"required"`
	Status      models.MaintenanceStatus `json:"status"`
	Price       float64                  `json:"price"`
	Paid        bool                     `json:"paid"`
}

func (r MaintenanceRequestBody) toInput() services.CreateMaintenanceInput {
	return services.CreateMaintenanceInput{
		PropertyID:  r.PropertyID,
		TenantID:    r.TenantID,
		Description: r.Description,
		Status:      r.Status,
		Price:       r.Price,
		Paid:        r.Paid,
	}
}

// GetBoard returns the triage board: every request in one of the three
// status buckets, filtered by the q query parameter.
func (h *MaintenanceHandler) GetBoard(c *gin.Context) {
	board, err := h.maintenanceService.Board(c.Query("q"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch maintenance board")
		return
	}

	c.JSON(http.StatusOK, board)
}

// GetRequest returns the detail view of one maintenance request.
func (h *MaintenanceHandler) GetRequest(c *gin.Context) {
	detail, err := h.maintenanceService.Detail(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrIssueNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch maintenance request")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateRequest records a new maintenance request.
func (h *MaintenanceHandler) CreateRequest(c *gin.Context) {
	var req MaintenanceRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.maintenanceService.Create(req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDescriptionRequired),
			errors.Is(err, services.ErrInvalidStatus):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create maintenance request")
		}
		return
	}

	c.JSON(http.StatusCreated, request)
}

// UpdateRequest updates an existing maintenance request.
func (h *MaintenanceHandler) UpdateRequest(c *gin.Context) {
	var req MaintenanceRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.maintenanceService.Update(c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIssueNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrDescriptionRequired),
			errors.Is(err, services.ErrInvalidStatus):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update maintenance request")
		}
		return
	}

	c.JSON(http.StatusOK, request)
}

// DeleteRequest deletes a maintenance request.
func (h *MaintenanceHandler) DeleteRequest(c *gin.Context) {
	if err := h.maintenanceService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrIssueNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to delete maintenance request")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Maintenance request deleted successfully",
	})
}
