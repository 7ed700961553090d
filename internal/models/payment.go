package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a recorded vendor payment row.
type Payment struct {
	PaymentID      string          `json:"paymentID"`      // Primary Key
	OrganizationID string          `json:"organizationID"` // FK -> organizations
	VendorID       string          `json:"vendorID"`       // FK -> customers
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"paymentDate"`
	PaymentMode    string          `json:"paymentMode"`
	Reference      string          `json:"reference"`
	Notes          string          `json:"notes"`
	ExcessAmount   decimal.Decimal `json:"excessAmount"`
	AuditFields
}

// PaymentAllocation represents one payment-to-bill application row.
type PaymentAllocation struct {
	AllocationID  string          `json:"allocationID"` // Primary Key
	PaymentID     string          `json:"paymentID"`    // FK -> payments
	BillID        string          `json:"billID"`       // FK -> bills
	Amount        decimal.Decimal `json:"amount"`
	PaymentMadeOn time.Time       `json:"paymentMadeOn"`
}
