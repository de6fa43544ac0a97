package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/propdesk/property-management-api/internal/errors"
	"github.com/propdesk/property-management-api/internal/services"
)

// PropertyHandler coordinates property HTTP handlers.
type PropertyHandler struct {
	propertyService *services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// PropertyRequest is the create/update body.
type PropertyRequest struct {
	PropertyName     string   `json:"property_name"`
	Address          string   `json:"address" binding:"required"`
	Description      string   `json:"description"`
	OwnerName        string   `json:"owner_name"`
	OwnerPhoneNumber string   `json:"owner_phone_number"`
	OwnerEmail       string   `json:"owner_email"`
	Postcode         string   `json:"postcode"`
	Price            float64  `json:"price"`
	Status           []string `json:"status"`
	Type             []string `json:"type"`
	Bedrooms         int      `json:"bedrooms"`
	Bathrooms        int      `json:"bathrooms"`
	Size             int      `json:"size"`
	KeyNumber        string   `json:"key_number"`
}

func (r PropertyRequest) toInput() services.CreatePropertyInput {
	return services.CreatePropertyInput{
		PropertyName:     r.PropertyName,
		Address:          r.Address,
		Description:      r.Description,
		OwnerName:        r.OwnerName,
		OwnerPhoneNumber: r.OwnerPhoneNumber,
		OwnerEmail:       r.OwnerEmail,
		Postcode:         r.Postcode,
		Price:            r.Price,
		Status:           r.Status,
		Type:             r.Type,
		Bedrooms:         r.Bedrooms,
		Bathrooms:        r.Bathrooms,
		Size:             r.Size,
		KeyNumber:        r.KeyNumber,
	}
}

// ListProperties returns all properties, filtered by the q query parameter.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.List(c.Query("q"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch properties")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
	})
}

// GetProperty returns a specific property by ID
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyService.GetProperty(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch property")
		return
	}

	c.JSON(http.StatusOK, property)
}

// CreateProperty creates a new property
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	property, err := h.propertyService.Create(req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrAddressRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create property")
		return
	}

	c.JSON(http.StatusCreated, property)
}

// UpdateProperty updates an existing property
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	property, err := h.propertyService.Update(c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPropertyNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrAddressRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update property")
		}
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty deletes a property. Related records are left in place.
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.propertyService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to delete property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Property deleted successfully",
	})
}
