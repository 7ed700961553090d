package domain

import "time"

// TaxPreference indicates whether a customer is charged GST at all.
type TaxPreference string

const (
	Taxable   TaxPreference = "TAXABLE"
	TaxExempt TaxPreference = "TAX_EXEMPT"
)

// Address is the normalized 5-field postal address used everywhere in the app.
// Upstream payloads may deliver addresses as bare strings or loose objects;
// mapping.NormalizeAddress converts both into this shape.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// Customer represents a counterparty (customer or vendor) of an organization.
// This is the mutable master record; transactions carry a CustomerSnapshot.
type Customer struct {
	CustomerID      string        `json:"customerID"`     // Primary Key (e.g., UUID)
	OrganizationID  string        `json:"organizationID"` // FK -> organizations.organization_id (NON-NULL)
	Name            string        `json:"name"`
	DisplayName     string        `json:"displayName"`
	CompanyName     string        `json:"companyName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	BillingAddress  Address       `json:"billingAddress"`
	ShippingAddress Address       `json:"shippingAddress"`
	GSTTreatment    string        `json:"gstTreatment"` // Free text, e.g. "Registered Business - Regular"
	TaxPreference   TaxPreference `json:"taxPreference"`
	GSTIN           string        `json:"gstin"`         // 15-char id; first 2 chars encode the state
	PlaceOfSupply   string        `json:"placeOfSupply"` // Conventionally "<2-digit-code> - <State name>"
	PAN             string        `json:"pan"`
	ExemptionReason string        `json:"exemptionReason"` // Only meaningful when TAX_EXEMPT
	CurrencyCode    string        `json:"currencyCode"`
	PaymentTerms    string        `json:"paymentTerms"` // Named term, e.g. "Net 30"
	PriceList       string        `json:"priceList"`    // Optional
	IsActive        bool          `json:"isActive"`
	AuditFields
}

// CustomerSnapshot is an immutable point-in-time copy of a Customer, captured
// when a transaction is created so later edits to the master record do not
// retroactively change historical documents. Once attached to a transaction a
// snapshot is never mutated; re-bootstrapping the transaction against a
// different customer captures a new one.
type CustomerSnapshot struct {
	CustomerID      string        `json:"customerID"`
	CustomerName    string        `json:"customerName"`
	DisplayName     string        `json:"displayName"`
	CompanyName     string        `json:"companyName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	BillingAddress  Address       `json:"billingAddress"`
	ShippingAddress Address       `json:"shippingAddress"`
	GSTTreatment    string        `json:"gstTreatment"`
	TaxPreference   TaxPreference `json:"taxPreference"`
	GSTIN           string        `json:"gstin"`
	PlaceOfSupply   string        `json:"placeOfSupply"`
	PAN             string        `json:"pan"`
	ExemptionReason string        `json:"exemptionReason"`
	CurrencyCode    string        `json:"currencyCode"`
	PaymentTerms    string        `json:"paymentTerms"`
	PriceList       string        `json:"priceList"`
	SnapshotDate    time.Time     `json:"snapshotDate"`
}

// Snapshot captures the immutable point-in-time copy of the customer.
func (c *Customer) Snapshot(at time.Time) CustomerSnapshot {
	return CustomerSnapshot{
		CustomerID:      c.CustomerID,
		CustomerName:    c.Name,
		DisplayName:     c.DisplayName,
		CompanyName:     c.CompanyName,
		Email:           c.Email,
		Phone:           c.Phone,
		BillingAddress:  c.BillingAddress,
		ShippingAddress: c.ShippingAddress,
		GSTTreatment:    c.GSTTreatment,
		TaxPreference:   c.TaxPreference,
		GSTIN:           c.GSTIN,
		PlaceOfSupply:   c.PlaceOfSupply,
		PAN:             c.PAN,
		ExemptionReason: c.ExemptionReason,
		CurrencyCode:    c.CurrencyCode,
		PaymentTerms:    c.PaymentTerms,
		PriceList:       c.PriceList,
		SnapshotDate:    at,
	}
}
