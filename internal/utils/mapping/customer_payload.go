package mapping

import (
	"time"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// CustomerSnapshotFromPayload builds a CustomerSnapshot from an arbitrary
// customer record as returned by a lookup API. Every absent field defaults to
// an empty string, a zero Address or the TAXABLE preference, so the snapshot
// is always safe to hand to the tax resolver.
func CustomerSnapshotFromPayload(payload map[string]any, at time.Time) domain.CustomerSnapshot {
	if payload == nil {
		return domain.CustomerSnapshot{TaxPreference: domain.Taxable, SnapshotDate: at}
	}

	snapshot := domain.CustomerSnapshot{
		CustomerID:      stringField(payload, "customerID", "customer_id", "id"),
		CustomerName:    stringField(payload, "customerName", "customer_name", "name"),
		DisplayName:     stringField(payload, "displayName", "display_name"),
		CompanyName:     stringField(payload, "companyName", "company_name"),
		Email:           stringField(payload, "email"),
		Phone:           stringField(payload, "phone", "mobile"),
		BillingAddress:  NormalizeAddress(payload["billingAddress"]),
		ShippingAddress: NormalizeAddress(payload["shippingAddress"]),
		GSTTreatment:    stringField(payload, "gstTreatment", "gst_treatment"),
		TaxPreference:   taxPreferenceField(payload),
		GSTIN:           stringField(payload, "gstin", "gstNo", "gst_no"),
		PlaceOfSupply:   stringField(payload, "placeOfSupply", "place_of_supply"),
		PAN:             stringField(payload, "pan"),
		ExemptionReason: stringField(payload, "exemptionReason", "exemption_reason"),
		CurrencyCode:    stringField(payload, "currency", "currencyCode", "currency_code"),
		PaymentTerms:    stringField(payload, "paymentTerms", "payment_terms"),
		PriceList:       stringField(payload, "priceList", "price_list"),
		SnapshotDate:    at,
	}

	if snapshot.DisplayName == "" {
		snapshot.DisplayName = snapshot.CustomerName
	}

	return snapshot
}

func taxPreferenceField(payload map[string]any) domain.TaxPreference {
	switch stringField(payload, "taxPreference", "tax_preference") {
	case "tax_exempt", "TAX_EXEMPT":
		return domain.TaxExempt
	default:
		return domain.Taxable
	}
}
