package repositories

import (
	"context"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// OrganizationReader defines read operations for organization data
type OrganizationReader interface {
	// FindOrganizationByID retrieves a specific organization.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListOrganizations retrieves all active organizations.
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
}

// OrganizationWriter defines write operations for organization data
type OrganizationWriter interface {
	// SaveOrganization persists a new organization.
	SaveOrganization(ctx context.Context, org domain.Organization) error
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
