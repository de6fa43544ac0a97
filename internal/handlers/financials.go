package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/propdesk/property-management-api/internal/errors"
	"github.com/propdesk/property-management-api/internal/services"
)

// FinancialsHandler coordinates the financial report HTTP handlers.
type FinancialsHandler struct {
	financeService *services.FinanceService
}

// NewFinancialsHandler creates a new FinancialsHandler
func NewFinancialsHandler(financeService *services.FinanceService) *FinancialsHandler {
	return &FinancialsHandler{
		financeService: financeService,
	}
}

// GetReport returns the per-property rollup, recomputed from source records
// and filtered by address substring via the q query parameter.
func (h *FinancialsHandler) GetReport(c *gin.Context) {
	rollups, err := h.financeService.Report(c.Query("q"))
	if err != nil {
		apierrors.InternalError(c, "Failed to compute financial report")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": rollups,
	})
}

// GetPropertyIssues returns a property's completed maintenance issues
// grouped by calendar month, for the report's detail modal.
func (h *FinancialsHandler) GetPropertyIssues(c *gin.Context) {
	groups, err := h.financeService.IssuesByMonth(c.Param("propertyId"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch property issues")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"months": groups,
	})
}

// SavePayments applies the operator's pending paid/unpaid toggles in one
// batch.
func (h *FinancialsHandler) SavePayments(c *gin.Context) {
	type SavePaymentsRequest struct {
		Changes map[string]bool `json:"changes" binding:"required"`
	}

	var req SavePaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.financeService.SavePaymentChanges(req.Changes); err != nil {
		switch {
		case errors.Is(err, services.ErrNoChanges):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrIssueNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to save payment changes")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment changes saved successfully",
	})
}
