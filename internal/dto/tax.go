package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// TaxRegimePreviewRequest asks for the GST treatment of a prospective
// transaction. Exactly one of CustomerID (an existing customer of the
// organization) or Customer (a raw record from an external lookup, normalized
// by the adapter layer) may be given; with neither, the same-state default
// regime is returned so forms can render before a customer is chosen.
type TaxRegimePreviewRequest struct {
	CustomerID string         `json:"customerID"`
	Customer   map[string]any `json:"customer"`
}

// TaxRegimeResponse defines the derived GST treatment.
type TaxRegimeResponse struct {
	Regime   string          `json:"regime"`
	CGSTRate decimal.Decimal `json:"cgstRate"`
	SGSTRate decimal.Decimal `json:"sgstRate"`
	IGSTRate decimal.Decimal `json:"igstRate"`
	Reason   string          `json:"reason"`
}

// ToTaxRegimeResponse converts a domain.TaxRegime to TaxRegimeResponse DTO.
func ToTaxRegimeResponse(regime domain.TaxRegime) TaxRegimeResponse {
	return TaxRegimeResponse{
		Regime:   string(regime.Regime),
		CGSTRate: regime.CGSTRate,
		SGSTRate: regime.SGSTRate,
		IGSTRate: regime.IGSTRate,
		Reason:   regime.Reason,
	}
}

// ItemTaxPreviewRequest asks for the tax split on a single line amount.
type ItemTaxPreviewRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	GSTRate    decimal.Decimal `json:"gstRate"`
	CustomerID string          `json:"customerID"`
	Customer   map[string]any  `json:"customer"`
}

// ItemTaxResponse defines the split amounts alongside the applied regime.
type ItemTaxResponse struct {
	CGST   decimal.Decimal   `json:"cgst"`
	SGST   decimal.Decimal   `json:"sgst"`
	IGST   decimal.Decimal   `json:"igst"`
	Total  decimal.Decimal   `json:"total"`
	Regime TaxRegimeResponse `json:"regime"`
}

// ToItemTaxResponse converts a domain.TaxBreakup and its regime to the DTO.
func ToItemTaxResponse(tax domain.TaxBreakup, regime domain.TaxRegime) ItemTaxResponse {
	return ItemTaxResponse{
		CGST:   tax.CGST,
		SGST:   tax.SGST,
		IGST:   tax.IGST,
		Total:  tax.Total,
		Regime: ToTaxRegimeResponse(regime),
	}
}
