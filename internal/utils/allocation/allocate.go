// Package allocation distributes a single payment amount across a party's
// outstanding bills, oldest first, so forms can prefill the amount applied to
// each bill when the user enters a total.
package allocation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// Allocation maps bill id -> the payment applied to that bill.
type Allocation map[string]domain.BillAllocation

// Totals summarizes an allocation against the entered payment amount.
// AmountInExcess may be negative when the caller manually over-allocates
// beyond the entered total; that is surfaced, not rejected.
type Totals struct {
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	UsedForPayments decimal.Decimal `json:"usedForPayments"`
	AmountInExcess  decimal.Decimal `json:"amountInExcess"`
}

// AutoAllocate walks the bills oldest first and applies totalAmount until it
// is exhausted. Bills with no open balance are skipped. Bills without a date
// sort as if dated asOf, i.e. most recent. A non-positive totalAmount returns
// an empty allocation, which clears any prior one. Any remainder is not
// recorded here; callers read it off CalculateTotals.
//
// asOf stamps PaymentMadeOn on every entry; it is an explicit parameter so
// callers (and tests) control the clock.
func AutoAllocate(totalAmount decimal.Decimal, bills []domain.Bill, asOf time.Time) Allocation {
	alloc := Allocation{}
	if len(bills) == 0 || totalAmount.LessThanOrEqual(decimal.Zero) {
		return alloc
	}

	sorted := make([]domain.Bill, len(bills))
	copy(sorted, bills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return effectiveDate(sorted[i], asOf).Before(effectiveDate(sorted[j], asOf))
	})

	remaining := totalAmount
	for _, bill := range sorted {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		due := bill.AmountDue()
		if due.LessThanOrEqual(decimal.Zero) {
			continue
		}
		applied := decimal.Min(remaining, due)
		alloc[bill.BillID] = domain.BillAllocation{
			BillID:        bill.BillID,
			Payment:       applied,
			PaymentMadeOn: asOf,
		}
		remaining = remaining.Sub(applied)
	}

	return alloc
}

func effectiveDate(bill domain.Bill, asOf time.Time) time.Time {
	if bill.Date.IsZero() {
		return asOf
	}
	return bill.Date
}

// SetBillPayment overrides a single bill's allocation without re-running the
// auto-allocation sweep. Manual edits stick until the total amount changes,
// at which point the caller re-runs AutoAllocate and the recompute wins.
// A non-positive amount removes the bill from the allocation.
func (a Allocation) SetBillPayment(billID string, amount decimal.Decimal, asOf time.Time) {
	if amount.LessThanOrEqual(decimal.Zero) {
		delete(a, billID)
		return
	}
	a[billID] = domain.BillAllocation{
		BillID:        billID,
		Payment:       amount,
		PaymentMadeOn: asOf,
	}
}

// Allocations returns the entries ordered by bill id for deterministic output.
func (a Allocation) Allocations() []domain.BillAllocation {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]domain.BillAllocation, 0, len(ids))
	for _, id := range ids {
		out = append(out, a[id])
	}
	return out
}

// CalculateTotals computes the allocation summary for the entered amount.
func CalculateTotals(alloc Allocation, totalAmount decimal.Decimal) Totals {
	used := decimal.Zero
	for _, entry := range alloc {
		used = used.Add(entry.Payment)
	}
	return Totals{
		AmountPaid:      totalAmount,
		UsedForPayments: used,
		AmountInExcess:  totalAmount.Sub(used),
	}
}
