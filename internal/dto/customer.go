package dto

import (
	"time"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer or
// vendor. Addresses are accepted as either a bare string or a structured
// object; the service normalizes both via mapping.NormalizeAddress.
type CreateCustomerRequest struct {
	Name            string `json:"name" binding:"required"`
	DisplayName     string `json:"displayName"`
	CompanyName     string `json:"companyName"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone"`
	BillingAddress  any    `json:"billingAddress"`
	ShippingAddress any    `json:"shippingAddress"`
	GSTTreatment    string `json:"gstTreatment"`
	TaxPreference   string `json:"taxPreference" binding:"omitempty,oneof=TAXABLE TAX_EXEMPT"`
	GSTIN           string `json:"gstin" binding:"omitempty,len=15"`
	PlaceOfSupply   string `json:"placeOfSupply"`
	PAN             string `json:"pan" binding:"omitempty,len=10"`
	ExemptionReason string `json:"exemptionReason"`
	CurrencyCode    string `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	PaymentTerms    string `json:"paymentTerms"`
	PriceList       string `json:"priceList"`
}

// UpdateCustomerRequest defines the updatable customer fields. Pointer fields
// distinguish "leave unchanged" from "set to empty".
type UpdateCustomerRequest struct {
	Name            *string `json:"name"`
	DisplayName     *string `json:"displayName"`
	CompanyName     *string `json:"companyName"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone"`
	BillingAddress  any     `json:"billingAddress"`
	ShippingAddress any     `json:"shippingAddress"`
	GSTTreatment    *string `json:"gstTreatment"`
	TaxPreference   *string `json:"taxPreference" binding:"omitempty,oneof=TAXABLE TAX_EXEMPT"`
	GSTIN           *string `json:"gstin" binding:"omitempty,len=15"`
	PlaceOfSupply   *string `json:"placeOfSupply"`
	PAN             *string `json:"pan" binding:"omitempty,len=10"`
	ExemptionReason *string `json:"exemptionReason"`
	CurrencyCode    *string `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	PaymentTerms    *string `json:"paymentTerms"`
	PriceList       *string `json:"priceList"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID      string         `json:"customerID"`
	Name            string         `json:"name"`
	DisplayName     string         `json:"displayName"`
	CompanyName     string         `json:"companyName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	BillingAddress  domain.Address `json:"billingAddress"`
	ShippingAddress domain.Address `json:"shippingAddress"`
	GSTTreatment    string         `json:"gstTreatment"`
	TaxPreference   string         `json:"taxPreference"`
	GSTIN           string         `json:"gstin"`
	PlaceOfSupply   string         `json:"placeOfSupply"`
	PAN             string         `json:"pan"`
	ExemptionReason string         `json:"exemptionReason"`
	CurrencyCode    string         `json:"currencyCode"`
	PaymentTerms    string         `json:"paymentTerms"`
	PriceList       string         `json:"priceList"`
	IsActive        bool           `json:"isActive"`
	CreatedAt       time.Time      `json:"createdAt"`
	LastUpdatedAt   time.Time      `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:      c.CustomerID,
		Name:            c.Name,
		DisplayName:     c.DisplayName,
		CompanyName:     c.CompanyName,
		Email:           c.Email,
		Phone:           c.Phone,
		BillingAddress:  c.BillingAddress,
		ShippingAddress: c.ShippingAddress,
		GSTTreatment:    c.GSTTreatment,
		TaxPreference:   string(c.TaxPreference),
		GSTIN:           c.GSTIN,
		PlaceOfSupply:   c.PlaceOfSupply,
		PAN:             c.PAN,
		ExemptionReason: c.ExemptionReason,
		CurrencyCode:    c.CurrencyCode,
		PaymentTerms:    c.PaymentTerms,
		PriceList:       c.PriceList,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
		LastUpdatedAt:   c.LastUpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// CustomerSnapshotResponse returns the captured point-in-time copy.
type CustomerSnapshotResponse struct {
	Snapshot domain.CustomerSnapshot `json:"snapshot"`
}
