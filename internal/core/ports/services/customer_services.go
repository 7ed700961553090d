package services

import (
	"context"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer scoped to an organization.
	GetCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves active customers of an organization.
	ListCustomers(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Customer, error)

	// SnapshotCustomer captures the immutable point-in-time copy used on transactions.
	SnapshotCustomer(ctx context.Context, organizationID, customerID string) (*domain.CustomerSnapshot, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, organizationID string, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// UpdateCustomer applies partial updates to a customer.
	UpdateCustomer(ctx context.Context, organizationID, customerID string, req dto.UpdateCustomerRequest, updaterUserID string) (*domain.Customer, error)

	// DeactivateCustomer soft-deletes a customer.
	DeactivateCustomer(ctx context.Context, organizationID, customerID string, updaterUserID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
