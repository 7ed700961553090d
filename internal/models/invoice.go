package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents an invoice header row. The customer snapshot is stored
// as a JSONB blob; it is written once at creation and never updated.
type Invoice struct {
	InvoiceID        string          `json:"invoiceID"`      // Primary Key
	OrganizationID   string          `json:"organizationID"` // FK -> organizations
	CustomerID       string          `json:"customerID"`     // FK -> customers
	InvoiceNumber    string          `json:"invoiceNumber"`
	InvoiceDate      time.Time       `json:"invoiceDate"`
	DueDate          time.Time       `json:"dueDate"`
	Status           string          `json:"status"`
	CustomerSnapshot []byte          `json:"customerSnapshot"` // JSONB
	Regime           string          `json:"regime"`
	RegimeReason     string          `json:"regimeReason"`
	SubTotal         decimal.Decimal `json:"subTotal"`
	CGSTTotal        decimal.Decimal `json:"cgstTotal"`
	SGSTTotal        decimal.Decimal `json:"sgstTotal"`
	IGSTTotal        decimal.Decimal `json:"igstTotal"`
	GrandTotal       decimal.Decimal `json:"grandTotal"`
	CurrencyCode     string          `json:"currencyCode"`
	Notes            string          `json:"notes"`
	AuditFields
}

// InvoiceLine represents a line item row belonging to an invoice.
type InvoiceLine struct {
	LineID      string          `json:"lineID"`    // Primary Key
	InvoiceID   string          `json:"invoiceID"` // FK -> invoices
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
	GSTRate     decimal.Decimal `json:"gstRate"`
	CGSTAmount  decimal.Decimal `json:"cgstAmount"`
	SGSTAmount  decimal.Decimal `json:"sgstAmount"`
	IGSTAmount  decimal.Decimal `json:"igstAmount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
