package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill represents a payable vendor bill of an organization. The vendor is a
// Customer record; the allocator only cares about date and the open balance.
type Bill struct {
	BillID         string          `json:"billID"`         // Primary Key (e.g., UUID)
	OrganizationID string          `json:"organizationID"` // FK -> organizations.organization_id (NON-NULL)
	VendorID       string          `json:"vendorID"`       // FK -> customers.customer_id
	BillNumber     string          `json:"billNumber"`
	Date           time.Time       `json:"date"` // Zero value means the bill date is unknown
	Total          decimal.Decimal `json:"total"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	CurrencyCode   string          `json:"currencyCode"`
	Notes          string          `json:"notes"`
	AuditFields
}

// AmountDue is the open balance remaining on the bill.
func (b *Bill) AmountDue() decimal.Decimal {
	return b.Total.Sub(b.AmountPaid)
}
