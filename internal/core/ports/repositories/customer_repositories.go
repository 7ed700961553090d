package repositories

import (
	"context"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer scoped to an organization.
	FindCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves active customers of an organization.
	ListCustomers(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer persists changes to an existing customer.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeactivateCustomer soft-deletes a customer.
	DeactivateCustomer(ctx context.Context, organizationID, customerID string, updatedByUserID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
