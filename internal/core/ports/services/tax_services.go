package services

import (
	"context"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/dto"
)

// TaxSvcFacade exposes the GST regime and item-tax previews backing the
// transaction forms. Both operations are permissive: incomplete customer
// data degrades to the same-state default regime rather than an error.
type TaxSvcFacade interface {
	// PreviewTaxRegime resolves the GST treatment for a prospective
	// transaction of the organization against the referenced or inline customer.
	PreviewTaxRegime(ctx context.Context, organizationID string, req dto.TaxRegimePreviewRequest) (domain.TaxRegime, error)

	// PreviewItemTax resolves the regime and splits the tax on one line amount.
	PreviewItemTax(ctx context.Context, organizationID string, req dto.ItemTaxPreviewRequest) (domain.TaxBreakup, domain.TaxRegime, error)
}
