package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// CreateInvoiceLineRequest defines one billed item.
type CreateInvoiceLineRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	GSTRate     decimal.Decimal `json:"gstRate"`
}

// CreateInvoiceRequest defines the data needed to create an invoice. The
// customer snapshot, regime and all tax figures are computed server-side.
type CreateInvoiceRequest struct {
	CustomerID    string                     `json:"customerID" binding:"required"`
	InvoiceNumber string                     `json:"invoiceNumber" binding:"required"`
	InvoiceDate   time.Time                  `json:"invoiceDate" binding:"required"`
	DueDate       time.Time                  `json:"dueDate"`
	Notes         string                     `json:"notes"`
	Lines         []CreateInvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// InvoiceLineResponse defines the data returned for an invoice line.
type InvoiceLineResponse struct {
	LineID      string          `json:"lineID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
	GSTRate     decimal.Decimal `json:"gstRate"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	IGST        decimal.Decimal `json:"igst"`
	TaxTotal    decimal.Decimal `json:"taxTotal"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                  `json:"invoiceID"`
	CustomerID    string                  `json:"customerID"`
	InvoiceNumber string                  `json:"invoiceNumber"`
	InvoiceDate   time.Time               `json:"invoiceDate"`
	DueDate       time.Time               `json:"dueDate"`
	Status        string                  `json:"status"`
	Snapshot      domain.CustomerSnapshot `json:"customerSnapshot"`
	Regime        string                  `json:"regime"`
	RegimeReason  string                  `json:"regimeReason"`
	SubTotal      decimal.Decimal         `json:"subTotal"`
	CGSTTotal     decimal.Decimal         `json:"cgstTotal"`
	SGSTTotal     decimal.Decimal         `json:"sgstTotal"`
	IGSTTotal     decimal.Decimal         `json:"igstTotal"`
	GrandTotal    decimal.Decimal         `json:"grandTotal"`
	CurrencyCode  string                  `json:"currencyCode"`
	Notes         string                  `json:"notes"`
	Lines         []InvoiceLineResponse   `json:"lines"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
}

// ListInvoicesResponse wraps a page of invoices with the next cursor.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToInvoiceLineResponse converts a domain.InvoiceLine to its DTO.
func ToInvoiceLineResponse(line *domain.InvoiceLine) InvoiceLineResponse {
	return InvoiceLineResponse{
		LineID:      line.LineID,
		Description: line.Description,
		Quantity:    line.Quantity,
		UnitPrice:   line.UnitPrice,
		Amount:      line.Amount,
		GSTRate:     line.GSTRate,
		CGST:        line.Tax.CGST,
		SGST:        line.Tax.SGST,
		IGST:        line.Tax.IGST,
		TaxTotal:    line.Tax.Total,
		LineTotal:   line.LineTotal,
	}
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(inv.Lines))
	for i, line := range inv.Lines {
		lines[i] = ToInvoiceLineResponse(&line)
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		CustomerID:    inv.CustomerID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Status:        string(inv.Status),
		Snapshot:      inv.Snapshot,
		Regime:        string(inv.Regime),
		RegimeReason:  inv.RegimeReason,
		SubTotal:      inv.SubTotal,
		CGSTTotal:     inv.CGSTTotal,
		SGSTTotal:     inv.SGSTTotal,
		IGSTTotal:     inv.IGSTTotal,
		GrandTotal:    inv.GrandTotal,
		CurrencyCode:  inv.CurrencyCode,
		Notes:         inv.Notes,
		Lines:         lines,
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
	}
}
