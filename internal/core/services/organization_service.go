package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
	"github.com/vyaparbooks/billing_app/internal/middleware"
	"github.com/vyaparbooks/billing_app/internal/utils/gst"
)

// OrganizationService handles business logic related to organizations.
type OrganizationService struct {
	orgRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(or portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationSvcFacade {
	return &OrganizationService{orgRepo: or}
}

// Ensure OrganizationService implements the facade interface
var _ portssvc.OrganizationSvcFacade = (*OrganizationService)(nil)

// CreateOrganization creates a new organization. A missing state code falls
// back to the first two characters of the GSTIN, then to the seller default.
func (s *OrganizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stateCode := req.StateCode
	if stateCode == "" && len(req.GSTIN) >= 2 {
		stateCode = req.GSTIN[:2]
	}
	if stateCode == "" {
		stateCode = gst.DefaultSellerStateCode
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = "INR"
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.Name,
		GSTIN:          req.GSTIN,
		StateCode:      stateCode,
		CurrencyCode:   currencyCode,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		logger.Error("Failed to save organization in repository", slog.String("error", err.Error()), slog.String("organization_name", req.Name))
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	logger.Info("Organization created successfully", slog.String("organization_id", org.OrganizationID))
	return &org, nil
}

// GetOrganizationByID retrieves a specific organization.
func (s *OrganizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization by id: %w", err)
	}
	return org, nil
}

// ListOrganizations retrieves all active organizations.
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := s.orgRepo.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	if orgs == nil {
		return []domain.Organization{}, nil
	}
	return orgs, nil
}
