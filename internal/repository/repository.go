package repository

import (
	"time"

	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/utils"
)

// PropertyRepository defines the interface for property data access
type PropertyRepository interface {
	Create(property *models.Property) error
	FindByID(id string) (*models.Property, error)
	List() ([]models.Property, error)
	Update(property *models.Property) error
	Delete(id string) error
	Count() (int64, error)
}

// TenantRepository defines the interface for tenant data access
type TenantRepository interface {
	Create(tenant *models.Tenant) error
	FindByID(id string) (*models.Tenant, error)
	List() ([]models.Tenant, error)
	Update(tenant *models.Tenant) error
	Delete(id string) error
	Count() (int64, error)
}

// LeaseRepository defines the interface for lease data access
type LeaseRepository interface {
	Create(lease *models.Lease) error
	FindByID(id string) (*models.Lease, error)

	// List returns all leases ordered by creation time.
	List() ([]models.Lease, error)

	// ListPage returns one page of leases in creation order plus the total
	// count.
	ListPage(params utils.PaginationParams) ([]models.Lease, int64, error)

	// ListByTenant returns a tenant's leases ordered by creation time.
	ListByTenant(tenantID string) ([]models.Lease, error)

	// ListEndingOnOrAfter returns leases whose end date has not passed the
	// given instant, for the expirations overview.
	ListEndingOnOrAfter(t time.Time) ([]models.Lease, error)

	Update(lease *models.Lease) error
	Delete(id string) error
}

// MaintenanceRepository defines the interface for maintenance request data access
type MaintenanceRepository interface {
	Create(request *models.MaintenanceRequest) error
	FindByID(id string) (*models.MaintenanceRequest, error)
	List() ([]models.MaintenanceRequest, error)

	// ListCompletedByProperty returns a property's completed requests in
	// creation order.
	ListCompletedByProperty(propertyID string) ([]models.MaintenanceRequest, error)

	Update(request *models.MaintenanceRequest) error
	Delete(id string) error

	// CountByStatus returns request counts keyed by status.
	CountByStatus() (map[models.MaintenanceStatus]int64, error)
}

// FinancialRepository defines the interface for the derived financials rows
type FinancialRepository interface {
	FindByPropertyID(propertyID string) (*models.FinancialSummary, error)
	List() ([]models.FinancialSummary, error)

	// ApplyPaymentChanges atomically updates the paid flag of each changed
	// request and overwrites the recomputed summaries, as one transaction.
	ApplyPaymentChanges(paidByRequestID map[string]bool, summaries []models.FinancialSummary) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id string) (*models.Task, error)

	// List returns all tasks ordered by creation time.
	List() ([]models.Task, error)

	// ListRecent returns the most recently created tasks, newest first.
	ListRecent(limit int) ([]models.Task, error)

	Update(task *models.Task) error
	Delete(id string) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// ContactRepository defines the interface for contact form submissions
type ContactRepository interface {
	Create(message *models.ContactMessage) error
}
