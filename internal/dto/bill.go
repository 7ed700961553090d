package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// CreateBillRequest defines the data needed to record a vendor bill. Date may
// be omitted for bills imported without one; the allocator then treats the
// bill as most recent.
type CreateBillRequest struct {
	VendorID   string          `json:"vendorID" binding:"required"`
	BillNumber string          `json:"billNumber" binding:"required"`
	Date       *time.Time      `json:"date"`
	Total      decimal.Decimal `json:"total" binding:"required"`
	Notes      string          `json:"notes"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	BillID        string          `json:"billID"`
	VendorID      string          `json:"vendorID"`
	BillNumber    string          `json:"billNumber"`
	Date          *time.Time      `json:"date,omitempty"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	CurrencyCode  string          `json:"currencyCode"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToBillResponse converts a domain.Bill to BillResponse DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	var date *time.Time
	if !b.Date.IsZero() {
		dateCopy := b.Date
		date = &dateCopy
	}
	return BillResponse{
		BillID:        b.BillID,
		VendorID:      b.VendorID,
		BillNumber:    b.BillNumber,
		Date:          date,
		Total:         b.Total,
		AmountPaid:    b.AmountPaid,
		AmountDue:     b.AmountDue(),
		CurrencyCode:  b.CurrencyCode,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBillResponse converts a slice of domain.Bill to DTOs.
func ToListBillResponse(bills []domain.Bill) []BillResponse {
	res := make([]BillResponse, len(bills))
	for i, b := range bills {
		res[i] = ToBillResponse(&b)
	}
	return res
}
