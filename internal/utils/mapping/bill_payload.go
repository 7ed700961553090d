package mapping

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// Date layouts accepted from bill listing payloads.
var billDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// BillFromPayload normalizes a loose bill/invoice record from a listing API
// into a domain.Bill the allocator can consume. Listing APIs disagree on
// field names per transaction type: the open balance arrives as balanceDue or
// amountDue, the date as date or billDate. Unparsable or missing dates leave
// Date at its zero value, which the allocator sorts as most recent.
func BillFromPayload(payload map[string]any) domain.Bill {
	if payload == nil {
		return domain.Bill{}
	}

	total := decimalField(payload, "total", "amount")
	due, ok := optionalDecimalField(payload, "amountDue", "amount_due", "balanceDue", "balance_due", "balance")
	if !ok {
		due = total.Sub(decimalField(payload, "amountPaid", "amount_paid"))
	}

	return domain.Bill{
		BillID:     stringField(payload, "billID", "bill_id", "id"),
		VendorID:   stringField(payload, "vendorID", "vendor_id"),
		BillNumber: stringField(payload, "billNumber", "bill_number", "number"),
		Date:       dateField(payload, "date", "billDate", "bill_date"),
		Total:      total,
		AmountPaid: total.Sub(due),
	}
}

// BillsFromPayload normalizes a whole listing.
func BillsFromPayload(payloads []map[string]any) []domain.Bill {
	bills := make([]domain.Bill, 0, len(payloads))
	for _, payload := range payloads {
		bills = append(bills, BillFromPayload(payload))
	}
	return bills
}

func decimalField(m map[string]any, keys ...string) decimal.Decimal {
	d, _ := optionalDecimalField(m, keys...)
	return d
}

func optionalDecimalField(m map[string]any, keys ...string) (decimal.Decimal, bool) {
	for _, key := range keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case float64:
			// NaN/Inf would panic decimal.NewFromFloat; treat them as absent.
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			return decimal.NewFromFloat(v), true
		case int:
			return decimal.NewFromInt(int64(v)), true
		case int64:
			return decimal.NewFromInt(v), true
		case string:
			if d, err := decimal.NewFromString(v); err == nil {
				return d, true
			}
		case decimal.Decimal:
			return v, true
		}
	}
	return decimal.Zero, false
}

func dateField(m map[string]any, keys ...string) time.Time {
	for _, key := range keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case time.Time:
			return v
		case string:
			for _, layout := range billDateLayouts {
				if t, err := time.Parse(layout, v); err == nil {
					return t
				}
			}
		}
	}
	return time.Time{}
}
