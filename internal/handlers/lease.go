package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/propdesk/property-management-api/internal/errors"
	"github.com/propdesk/property-management-api/internal/services"
	"github.com/propdesk/property-management-api/internal/utils"
)

// LeaseHandler coordinates lease HTTP handlers.
type LeaseHandler struct {
	leaseService *services.LeaseService
}

// NewLeaseHandler creates a new LeaseHandler
func NewLeaseHandler(leaseService *services.LeaseService) *LeaseHandler {
	return &LeaseHandler{
		leaseService: leaseService,
	}
}

// LeaseRequest is the create/update body.
type LeaseRequest struct {
	PropertyID string    `json:"property_id"`
	TenantID   string    `json:"tenant_id"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	Rent       float64   `json:"rent"`
	Deposit    float64   `json:"deposit"`
	Terms      string    `json:"terms"`
}

func (r LeaseRequest) toInput() services.CreateLeaseInput {
	return services.CreateLeaseInput{
		PropertyID: r.PropertyID,
		TenantID:   r.TenantID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Rent:       r.Rent,
		Deposit:    r.Deposit,
		Terms:      r.Terms,
	}
}

// ListLeases returns one page of leases in creation order.
func (h *LeaseHandler) ListLeases(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	leases, total, err := h.leaseService.ListPage(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch leases")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leases": leases,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetLease returns a specific lease by ID
func (h *LeaseHandler) GetLease(c *gin.Context) {
	lease, err := h.leaseService.GetLease(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrLeaseNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch lease")
		return
	}

	c.JSON(http.StatusOK, lease)
}

// CreateLease creates a new lease
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	var req LeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	lease, err := h.leaseService.Create(req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create lease")
		return
	}

	c.JSON(http.StatusCreated, lease)
}

// UpdateLease updates an existing lease
func (h *LeaseHandler) UpdateLease(c *gin.Context) {
	var req LeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	lease, err := h.leaseService.Update(c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLeaseNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidDateRange):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update lease")
		}
		return
	}

	c.JSON(http.StatusOK, lease)
}

// DeleteLease deletes a lease
func (h *LeaseHandler) DeleteLease(c *gin.Context) {
	if err := h.leaseService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrLeaseNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to delete lease")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lease deleted successfully",
	})
}
