// Package gst implements GST regime determination and per-item tax splitting.
// The functions here are pure and permissive: missing or malformed customer
// data degrades to a safe same-state default so a draft document can always
// be rendered, never to an error.
package gst

import (
	"regexp"

	"github.com/shopspring/decimal"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// DefaultSellerStateCode is the GST state code assumed for the seller when the
// organization has none configured ("27" = Maharashtra).
const DefaultSellerStateCode = "27"

// The fixed split rates applied by this module. Intra-state tax is levied as
// equal CGST/SGST halves of 9%, inter-state as a single 18% IGST. Real GST
// rates vary per item; the per-item rate is applied in CalculateItemTax while
// these fixed regime rates drive the form-level default split.
var (
	intraHalfRate = decimal.NewFromInt(9)
	interFullRate = decimal.NewFromInt(18)
)

var placeOfSupplyCode = regexp.MustCompile(`^(\d{2})`)

// DetermineTaxRegime decides the GST treatment for a transaction from a
// (possibly nil) customer snapshot and the seller's 2-digit state code.
// Rules are evaluated in order; the first match wins:
//  1. no snapshot            -> intra-state default
//  2. tax-exempt customer    -> exempt, zero rates
//  3. customer state from place of supply, else GSTIN prefix
//  4. no resolvable state    -> intra-state default
//  5. same state as seller   -> intra-state
//  6. otherwise              -> inter-state
func DetermineTaxRegime(snapshot *domain.CustomerSnapshot, sellerStateCode string) domain.TaxRegime {
	if snapshot == nil {
		return intraRegime("No customer selected")
	}

	if snapshot.TaxPreference == domain.TaxExempt {
		reason := snapshot.ExemptionReason
		if reason == "" {
			reason = "Customer is tax exempt"
		}
		return domain.TaxRegime{
			Regime:   domain.RegimeExempt,
			CGSTRate: decimal.Zero,
			SGSTRate: decimal.Zero,
			IGSTRate: decimal.Zero,
			Reason:   reason,
		}
	}

	customerStateCode := resolveStateCode(snapshot)
	if customerStateCode == "" {
		return intraRegime("Same state transaction (default)")
	}

	if customerStateCode == sellerStateCode {
		return intraRegime("Same state transaction")
	}

	return domain.TaxRegime{
		Regime:   domain.RegimeInter,
		CGSTRate: decimal.Zero,
		SGSTRate: decimal.Zero,
		IGSTRate: interFullRate,
		Reason:   "Inter-state transaction",
	}
}

// resolveStateCode extracts the customer's 2-digit state code from the place
// of supply (leading digits), falling back to the GSTIN prefix.
func resolveStateCode(snapshot *domain.CustomerSnapshot) string {
	if m := placeOfSupplyCode.FindStringSubmatch(snapshot.PlaceOfSupply); m != nil {
		return m[1]
	}
	if len(snapshot.GSTIN) >= 2 {
		return snapshot.GSTIN[:2]
	}
	return ""
}

func intraRegime(reason string) domain.TaxRegime {
	return domain.TaxRegime{
		Regime:   domain.RegimeIntra,
		CGSTRate: intraHalfRate,
		SGSTRate: intraHalfRate,
		IGSTRate: decimal.Zero,
		Reason:   reason,
	}
}

// CalculateItemTax splits the tax on a line amount at the item's GST rate
// according to the regime: exempt (or non-positive rate) yields zeros,
// inter-state puts the full tax into IGST, intra-state splits it equally
// between CGST and SGST. Total is always the sum of the three components.
func CalculateItemTax(amount, gstRate decimal.Decimal, regime domain.TaxRegime) domain.TaxBreakup {
	if regime.Regime == domain.RegimeExempt || gstRate.LessThanOrEqual(decimal.Zero) {
		return domain.TaxBreakup{
			CGST:  decimal.Zero,
			SGST:  decimal.Zero,
			IGST:  decimal.Zero,
			Total: decimal.Zero,
		}
	}

	totalTax := amount.Mul(gstRate).Div(decimal.NewFromInt(100))

	if regime.Regime == domain.RegimeInter {
		return domain.TaxBreakup{
			CGST:  decimal.Zero,
			SGST:  decimal.Zero,
			IGST:  totalTax,
			Total: totalTax,
		}
	}

	half := totalTax.Div(decimal.NewFromInt(2))
	return domain.TaxBreakup{
		CGST:  half,
		SGST:  half,
		IGST:  decimal.Zero,
		Total: totalTax,
	}
}
