package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/propdesk/property-management-api/internal/errors"
	"github.com/propdesk/property-management-api/internal/services"
)

// TenantHandler coordinates tenant HTTP handlers.
type TenantHandler struct {
	tenantService *services.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// TenantRequest is the create/update body.
type TenantRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	PropertyID    string `json:"property_id"`
}

func (r TenantRequest) toInput() services.CreateTenantInput {
	return services.CreateTenantInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		PropertyID:    r.PropertyID,
	}
}

// ListTenants returns the roster: every tenant with address and active lease
// resolved, filtered by the q query parameter.
func (h *TenantHandler) ListTenants(c *gin.Context) {
	entries, err := h.tenantService.Roster(c.Query("q"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tenants")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tenants": entries,
	})
}

// GetTenant returns the tenant detail: address, active lease and lease
// history with expired flags.
func (h *TenantHandler) GetTenant(c *gin.Context) {
	detail, err := h.tenantService.Detail(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch tenant")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateTenant creates a new tenant
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tenant, err := h.tenantService.Create(req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create tenant")
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// UpdateTenant updates an existing tenant
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tenant, err := h.tenantService.Update(c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTenantNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrNameRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update tenant")
		}
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant deletes a tenant. Leases referencing them stay behind.
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.tenantService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to delete tenant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tenant deleted successfully",
	})
}
