package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceFinalized InvoiceStatus = "FINALIZED"
	InvoiceVoid      InvoiceStatus = "VOID"
)

// Invoice represents a sales invoice issued by an organization to a customer.
// Tax figures are computed once at creation from the captured snapshot and the
// organization's state code, then persisted.
type Invoice struct {
	InvoiceID      string           `json:"invoiceID"`      // Primary Key (e.g., UUID)
	OrganizationID string           `json:"organizationID"` // FK -> organizations.organization_id (NON-NULL)
	CustomerID     string           `json:"customerID"`     // FK -> customers.customer_id
	InvoiceNumber  string           `json:"invoiceNumber"`
	InvoiceDate    time.Time        `json:"invoiceDate"`
	DueDate        time.Time        `json:"dueDate"`
	Status         InvoiceStatus    `json:"status"`
	Snapshot       CustomerSnapshot `json:"customerSnapshot"` // Immutable copy captured at creation
	Regime         RegimeKind       `json:"regime"`
	RegimeReason   string           `json:"regimeReason"`
	SubTotal       decimal.Decimal  `json:"subTotal"`
	CGSTTotal      decimal.Decimal  `json:"cgstTotal"`
	SGSTTotal      decimal.Decimal  `json:"sgstTotal"`
	IGSTTotal      decimal.Decimal  `json:"igstTotal"`
	GrandTotal     decimal.Decimal  `json:"grandTotal"`
	CurrencyCode   string           `json:"currencyCode"`
	Notes          string           `json:"notes"`
	Lines          []InvoiceLine    `json:"lines"` // Often loaded separately
	AuditFields
}

// InvoiceLine is a single billed item on an invoice.
type InvoiceLine struct {
	LineID      string          `json:"lineID"`    // Primary Key (e.g., UUID)
	InvoiceID   string          `json:"invoiceID"` // FK -> invoices.invoice_id
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`  // Quantity * UnitPrice
	GSTRate     decimal.Decimal `json:"gstRate"` // Item's configured GST percentage
	Tax         TaxBreakup      `json:"tax"`     // Split per the invoice's regime
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
