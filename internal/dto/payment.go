package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/utils/allocation"
)

// PreviewAllocationRequest asks how a payment amount would spread across a
// vendor's outstanding bills. Bills are loaded for VendorID; alternatively a
// raw bill listing (as delivered by an external API, loose field names and
// all) may be passed inline and is normalized by the adapter layer.
type PreviewAllocationRequest struct {
	VendorID    string           `json:"vendorID"`
	Amount      decimal.Decimal  `json:"amount"`
	PaymentDate *time.Time       `json:"paymentDate"`
	Bills       []map[string]any `json:"bills"`
}

// AllocationEntryResponse is the payment applied to one bill.
type AllocationEntryResponse struct {
	BillID        string          `json:"billID"`
	Payment       decimal.Decimal `json:"payment"`
	PaymentMadeOn time.Time       `json:"paymentMadeOn"`
}

// AllocationTotalsResponse summarizes an allocation against the entered amount.
type AllocationTotalsResponse struct {
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	UsedForPayments decimal.Decimal `json:"usedForPayments"`
	AmountInExcess  decimal.Decimal `json:"amountInExcess"`
}

// PreviewAllocationResponse is the computed split plus its totals.
type PreviewAllocationResponse struct {
	Allocations []AllocationEntryResponse `json:"allocations"`
	Totals      AllocationTotalsResponse  `json:"totals"`
}

// PaymentAllocationOverride is a caller-adjusted split for one bill, sent
// when the user has manually edited the prefilled allocation.
type PaymentAllocationOverride struct {
	BillID string          `json:"billID" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreatePaymentRequest records a vendor payment. When Allocations is empty
// the server auto-allocates oldest-first; otherwise the caller's splits are
// taken as-is (validated against each bill's open balance).
type CreatePaymentRequest struct {
	VendorID    string                      `json:"vendorID" binding:"required"`
	Amount      decimal.Decimal             `json:"amount" binding:"required"`
	PaymentDate *time.Time                  `json:"paymentDate"`
	PaymentMode string                      `json:"paymentMode"`
	Reference   string                      `json:"reference"`
	Notes       string                      `json:"notes"`
	Allocations []PaymentAllocationOverride `json:"allocations" binding:"omitempty,dive"`
}

// PaymentResponse defines the data returned for a recorded payment.
type PaymentResponse struct {
	PaymentID    string                    `json:"paymentID"`
	VendorID     string                    `json:"vendorID"`
	Amount       decimal.Decimal           `json:"amount"`
	PaymentDate  time.Time                 `json:"paymentDate"`
	PaymentMode  string                    `json:"paymentMode"`
	Reference    string                    `json:"reference"`
	Notes        string                    `json:"notes"`
	ExcessAmount decimal.Decimal           `json:"excessAmount"`
	Allocations  []AllocationEntryResponse `json:"allocations"`
	CreatedAt    time.Time                 `json:"createdAt"`
	CreatedBy    string                    `json:"createdBy"`
}

// ToAllocationEntryResponses converts ordered allocation entries to DTOs.
func ToAllocationEntryResponses(entries []domain.BillAllocation) []AllocationEntryResponse {
	res := make([]AllocationEntryResponse, len(entries))
	for i, entry := range entries {
		res[i] = AllocationEntryResponse{
			BillID:        entry.BillID,
			Payment:       entry.Payment,
			PaymentMadeOn: entry.PaymentMadeOn,
		}
	}
	return res
}

// ToPreviewAllocationResponse converts an allocation and its totals to the DTO.
func ToPreviewAllocationResponse(alloc allocation.Allocation, totals allocation.Totals) PreviewAllocationResponse {
	return PreviewAllocationResponse{
		Allocations: ToAllocationEntryResponses(alloc.Allocations()),
		Totals: AllocationTotalsResponse{
			AmountPaid:      totals.AmountPaid,
			UsedForPayments: totals.UsedForPayments,
			AmountInExcess:  totals.AmountInExcess,
		},
	}
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		VendorID:     p.VendorID,
		Amount:       p.Amount,
		PaymentDate:  p.PaymentDate,
		PaymentMode:  p.PaymentMode,
		Reference:    p.Reference,
		Notes:        p.Notes,
		ExcessAmount: p.ExcessAmount,
		Allocations:  ToAllocationEntryResponses(p.Allocations),
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
}
