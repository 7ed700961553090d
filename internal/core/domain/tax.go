package domain

import "github.com/shopspring/decimal"

// RegimeKind classifies how GST applies to a transaction.
type RegimeKind string

const (
	RegimeIntra  RegimeKind = "INTRA"  // Same-state: tax split equally into CGST and SGST
	RegimeInter  RegimeKind = "INTER"  // Cross-state: full tax as IGST
	RegimeExempt RegimeKind = "EXEMPT" // No tax at all
)

// TaxRegime is the derived GST treatment for a transaction. It is computed
// from a CustomerSnapshot and the seller's state code and never stored on its
// own; documents store the resulting rates and the audit Reason.
type TaxRegime struct {
	Regime   RegimeKind      `json:"regime"`
	CGSTRate decimal.Decimal `json:"cgstRate"` // Percentage
	SGSTRate decimal.Decimal `json:"sgstRate"` // Percentage
	IGSTRate decimal.Decimal `json:"igstRate"` // Percentage
	Reason   string          `json:"reason"`   // Human-readable audit string
}

// TaxBreakup holds the tax amounts for a single line amount under a regime.
type TaxBreakup struct {
	CGST  decimal.Decimal `json:"cgst"`
	SGST  decimal.Decimal `json:"sgst"`
	IGST  decimal.Decimal `json:"igst"`
	Total decimal.Decimal `json:"total"`
}
