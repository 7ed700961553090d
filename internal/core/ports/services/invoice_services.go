package services

import (
	"context"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its lines.
	GetInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices with a cursor for the next page.
	ListInvoices(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice captures the customer snapshot, resolves the tax regime,
	// computes all line and header tax figures, and persists the invoice.
	CreateInvoice(ctx context.Context, organizationID string, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// FinalizeInvoice transitions a draft invoice to FINALIZED.
	FinalizeInvoice(ctx context.Context, organizationID, invoiceID string, updaterUserID string) error

	// VoidInvoice transitions an invoice to VOID.
	VoidInvoice(ctx context.Context, organizationID, invoiceID string, updaterUserID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
