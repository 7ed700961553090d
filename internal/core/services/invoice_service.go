package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
	"github.com/vyaparbooks/billing_app/internal/middleware"
	"github.com/vyaparbooks/billing_app/internal/utils/gst"
)

// InvoiceService handles business logic related to sales invoices. Creation
// captures the customer snapshot, resolves the regime once, and derives all
// tax figures from it; the stored invoice never recomputes them.
type InvoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	orgRepo      portsrepo.OrganizationRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(ir portsrepo.InvoiceRepositoryFacade, cr portsrepo.CustomerRepositoryFacade, or portsrepo.OrganizationRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &InvoiceService{
		invoiceRepo:  ir,
		customerRepo: cr,
		orgRepo:      or,
	}
}

// Ensure InvoiceService implements the facade interface
var _ portssvc.InvoiceSvcFacade = (*InvoiceService)(nil)

// CreateInvoice builds and persists an invoice in DRAFT status.
func (s *InvoiceService) CreateInvoice(ctx context.Context, organizationID string, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, organizationID, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	now := time.Now()
	snapshot := customer.Snapshot(now)

	sellerStateCode := org.StateCode
	if sellerStateCode == "" {
		sellerStateCode = gst.DefaultSellerStateCode
	}
	regime := gst.DetermineTaxRegime(&snapshot, sellerStateCode)

	invoiceID := uuid.NewString()
	lines := make([]domain.InvoiceLine, len(req.Lines))
	subTotal := decimal.Zero
	cgstTotal := decimal.Zero
	sgstTotal := decimal.Zero
	igstTotal := decimal.Zero

	for i, lineReq := range req.Lines {
		amount := lineReq.Quantity.Mul(lineReq.UnitPrice)
		tax := gst.CalculateItemTax(amount, lineReq.GSTRate, regime)

		lines[i] = domain.InvoiceLine{
			LineID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: lineReq.Description,
			Quantity:    lineReq.Quantity,
			UnitPrice:   lineReq.UnitPrice,
			Amount:      amount,
			GSTRate:     lineReq.GSTRate,
			Tax:         tax,
			LineTotal:   amount.Add(tax.Total),
		}

		subTotal = subTotal.Add(amount)
		cgstTotal = cgstTotal.Add(tax.CGST)
		sgstTotal = sgstTotal.Add(tax.SGST)
		igstTotal = igstTotal.Add(tax.IGST)
	}

	currencyCode := snapshot.CurrencyCode
	if currencyCode == "" {
		currencyCode = org.CurrencyCode
	}

	invoice := domain.Invoice{
		InvoiceID:      invoiceID,
		OrganizationID: organizationID,
		CustomerID:     req.CustomerID,
		InvoiceNumber:  req.InvoiceNumber,
		InvoiceDate:    req.InvoiceDate,
		DueDate:        req.DueDate,
		Status:         domain.InvoiceDraft,
		Snapshot:       snapshot,
		Regime:         regime.Regime,
		RegimeReason:   regime.Reason,
		SubTotal:       subTotal,
		CGSTTotal:      cgstTotal,
		SGSTTotal:      sgstTotal,
		IGSTTotal:      igstTotal,
		GrandTotal:     subTotal.Add(cgstTotal).Add(sgstTotal).Add(igstTotal),
		CurrencyCode:   currencyCode,
		Notes:          req.Notes,
		Lines:          lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice, lines); err != nil {
		logger.Error("Failed to save invoice in repository", slog.String("error", err.Error()), slog.String("invoice_number", req.InvoiceNumber))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	logger.Info("Invoice created successfully", slog.String("invoice_id", invoiceID), slog.String("regime", string(regime.Regime)))
	return &invoice, nil
}

// GetInvoiceByID retrieves an invoice with its lines.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, organizationID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice by id: %w", err)
	}

	lines, err := s.invoiceRepo.FindLinesByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice lines: %w", err)
	}
	invoice.Lines = lines

	return invoice, nil
}

// ListInvoices retrieves a page of invoices with a cursor for the next page.
func (s *InvoiceService) ListInvoices(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	invoices, token, err := s.invoiceRepo.ListInvoices(ctx, organizationID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, token, nil
}

// FinalizeInvoice transitions a draft invoice to FINALIZED.
func (s *InvoiceService) FinalizeInvoice(ctx context.Context, organizationID, invoiceID string, updaterUserID string) error {
	return s.transitionStatus(ctx, organizationID, invoiceID, domain.InvoiceFinalized, updaterUserID)
}

// VoidInvoice transitions an invoice to VOID.
func (s *InvoiceService) VoidInvoice(ctx context.Context, organizationID, invoiceID string, updaterUserID string) error {
	return s.transitionStatus(ctx, organizationID, invoiceID, domain.InvoiceVoid, updaterUserID)
}

func (s *InvoiceService) transitionStatus(ctx context.Context, organizationID, invoiceID string, target domain.InvoiceStatus, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, organizationID, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to load invoice: %w", err)
	}

	if !validTransition(invoice.Status, target) {
		return fmt.Errorf("%w: invoice %s cannot move from %s to %s", apperrors.ErrValidation, invoiceID, invoice.Status, target)
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, organizationID, invoiceID, target, updaterUserID, time.Now()); err != nil {
		logger.Error("Failed to update invoice status", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID), slog.String("target_status", string(target)))
		return fmt.Errorf("failed to update invoice status: %w", err)
	}

	logger.Info("Invoice status updated", slog.String("invoice_id", invoiceID), slog.String("status", string(target)))
	return nil
}

// validTransition enforces the DRAFT -> FINALIZED -> VOID lifecycle. Drafts
// may also be voided directly.
func validTransition(from, to domain.InvoiceStatus) bool {
	switch from {
	case domain.InvoiceDraft:
		return to == domain.InvoiceFinalized || to == domain.InvoiceVoid
	case domain.InvoiceFinalized:
		return to == domain.InvoiceVoid
	default:
		return false
	}
}
