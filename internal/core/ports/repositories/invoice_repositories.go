package repositories

import (
	"context"
	"time"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice header scoped to an organization.
	FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error)

	// FindLinesByInvoiceID retrieves the line items of an invoice.
	FindLinesByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceLine, error)

	// ListInvoices retrieves a page of invoices ordered by (invoice_date, created_at) descending.
	ListInvoices(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists an invoice header and its lines atomically.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error

	// UpdateInvoiceStatus transitions an invoice's status.
	UpdateInvoiceStatus(ctx context.Context, organizationID, invoiceID string, status domain.InvoiceStatus, updatedByUserID string, updatedAt time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
