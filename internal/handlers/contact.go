package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/propdesk/property-management-api/internal/errors"
	"github.com/propdesk/property-management-api/internal/services"
)

// ContactHandler accepts public contact form submissions.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit stores a contact form submission. No authentication required.
func (h *ContactHandler) Submit(c *gin.Context) {
	type ContactRequest struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Message string `json:"message" binding:"required"`
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.contactService.Submit(services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContactFieldsRequired),
			errors.Is(err, services.ErrInvalidEmail):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to store contact message")
		}
		return
	}

	c.JSON(http.StatusCreated, message)
}
