package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
	"github.com/vyaparbooks/billing_app/internal/middleware"
	"github.com/vyaparbooks/billing_app/internal/utils/gst"
	"github.com/vyaparbooks/billing_app/internal/utils/mapping"
)

// TaxService resolves GST regimes and item tax splits for the transaction
// forms. The rules themselves live in the gst package; this layer supplies
// the seller's state code and the customer snapshot.
type TaxService struct {
	orgRepo      portsrepo.OrganizationRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewTaxService creates a new TaxService.
func NewTaxService(or portsrepo.OrganizationRepositoryFacade, cr portsrepo.CustomerRepositoryFacade) portssvc.TaxSvcFacade {
	return &TaxService{
		orgRepo:      or,
		customerRepo: cr,
	}
}

// Ensure TaxService implements the facade interface
var _ portssvc.TaxSvcFacade = (*TaxService)(nil)

// PreviewTaxRegime resolves the GST treatment for a prospective transaction.
func (s *TaxService) PreviewTaxRegime(ctx context.Context, organizationID string, req dto.TaxRegimePreviewRequest) (domain.TaxRegime, error) {
	snapshot, err := s.resolveSnapshot(ctx, organizationID, req.CustomerID, req.Customer)
	if err != nil {
		return domain.TaxRegime{}, err
	}

	sellerStateCode, err := s.sellerStateCode(ctx, organizationID)
	if err != nil {
		return domain.TaxRegime{}, err
	}

	return gst.DetermineTaxRegime(snapshot, sellerStateCode), nil
}

// PreviewItemTax resolves the regime and splits the tax on one line amount.
func (s *TaxService) PreviewItemTax(ctx context.Context, organizationID string, req dto.ItemTaxPreviewRequest) (domain.TaxBreakup, domain.TaxRegime, error) {
	regime, err := s.PreviewTaxRegime(ctx, organizationID, dto.TaxRegimePreviewRequest{
		CustomerID: req.CustomerID,
		Customer:   req.Customer,
	})
	if err != nil {
		return domain.TaxBreakup{}, domain.TaxRegime{}, err
	}

	return gst.CalculateItemTax(req.Amount, req.GSTRate, regime), regime, nil
}

// resolveSnapshot turns the preview request's customer reference into a
// snapshot. A stored customer wins over an inline payload; with neither the
// result is nil and the regime rules apply their no-customer default.
func (s *TaxService) resolveSnapshot(ctx context.Context, organizationID, customerID string, payload map[string]any) (*domain.CustomerSnapshot, error) {
	if customerID != "" {
		customer, err := s.customerRepo.FindCustomerByID(ctx, organizationID, customerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load customer for tax preview: %w", err)
		}
		snapshot := customer.Snapshot(time.Now())
		return &snapshot, nil
	}

	if len(payload) > 0 {
		snapshot := mapping.CustomerSnapshotFromPayload(payload, time.Now())
		return &snapshot, nil
	}

	return nil, nil
}

// sellerStateCode reads the organization's GST state code, falling back to
// the default when the organization has none configured.
func (s *TaxService) sellerStateCode(ctx context.Context, organizationID string) (string, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to load organization for tax preview", slog.String("error", err.Error()), slog.String("organization_id", organizationID))
		return "", fmt.Errorf("failed to load organization: %w", err)
	}
	if org.StateCode == "" {
		return gst.DefaultSellerStateCode, nil
	}
	return org.StateCode, nil
}
