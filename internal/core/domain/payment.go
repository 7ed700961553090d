package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillAllocation records how much of a payment was applied to one bill.
type BillAllocation struct {
	BillID        string          `json:"billID"`
	Payment       decimal.Decimal `json:"payment"`
	PaymentMadeOn time.Time       `json:"paymentMadeOn"`
}

// Payment represents a vendor payment recorded by an organization and its
// split across outstanding bills. Any portion of Amount not applied to a bill
// is kept as ExcessAmount.
type Payment struct {
	PaymentID      string           `json:"paymentID"`      // Primary Key (e.g., UUID)
	OrganizationID string           `json:"organizationID"` // FK -> organizations.organization_id (NON-NULL)
	VendorID       string           `json:"vendorID"`       // FK -> customers.customer_id
	Amount         decimal.Decimal  `json:"amount"`
	PaymentDate    time.Time        `json:"paymentDate"`
	PaymentMode    string           `json:"paymentMode"` // e.g. "BANK_TRANSFER", "CASH"
	Reference      string           `json:"reference"`   // Cheque/UTR number, free text
	Notes          string           `json:"notes"`
	ExcessAmount   decimal.Decimal  `json:"excessAmount"`
	Allocations    []BillAllocation `json:"allocations"`
	AuditFields
}
