package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill represents a payable vendor bill row. The bill date is nullable:
// bills imported without one keep NULL and the allocator treats them as most
// recent.
type Bill struct {
	BillID         string          `json:"billID"`         // Primary Key
	OrganizationID string          `json:"organizationID"` // FK -> organizations
	VendorID       string          `json:"vendorID"`       // FK -> customers
	BillNumber     string          `json:"billNumber"`
	BillDate       *time.Time      `json:"billDate"` // Nullable
	Total          decimal.Decimal `json:"total"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	CurrencyCode   string          `json:"currencyCode"`
	Notes          string          `json:"notes"`
	AuditFields
}
