package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/repository"
	"go.uber.org/zap"
)

var ErrContactFieldsRequired = errors.New("name, email and message are required")

// ContactService stores public contact form submissions.
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// ContactInput represents a contact form submission
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// Submit validates and stores a submission. There is no outbound mail yet;
// submissions are logged so operators notice them.
func (s *ContactService) Submit(input ContactInput) (*models.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	if name == "" || message == "" || strings.TrimSpace(input.Email) == "" {
		return nil, ErrContactFieldsRequired
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, ErrInvalidEmail
	}

	record := &models.ContactMessage{
		Name:    name,
		Email:   strings.TrimSpace(input.Email),
		Message: message,
	}
	if err := s.contactRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	zap.L().Info("Contact form submission",
		zap.String("name", record.Name),
		zap.String("email", record.Email),
	)
	return record, nil
}
