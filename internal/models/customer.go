package models

// Customer represents a counterparty row. Addresses are flattened into
// dedicated columns rather than JSON so they stay queryable.
type Customer struct {
	CustomerID     string `json:"customerID"`     // Primary Key
	OrganizationID string `json:"organizationID"` // FK -> organizations
	Name           string `json:"name"`
	DisplayName    string `json:"displayName"`
	CompanyName    string `json:"companyName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`

	BillingStreet      string `json:"billingStreet"`
	BillingCity        string `json:"billingCity"`
	BillingState       string `json:"billingState"`
	BillingCountry     string `json:"billingCountry"`
	BillingPostalCode  string `json:"billingPostalCode"`
	ShippingStreet     string `json:"shippingStreet"`
	ShippingCity       string `json:"shippingCity"`
	ShippingState      string `json:"shippingState"`
	ShippingCountry    string `json:"shippingCountry"`
	ShippingPostalCode string `json:"shippingPostalCode"`

	GSTTreatment    string `json:"gstTreatment"`
	TaxPreference   string `json:"taxPreference"` // TAXABLE or TAX_EXEMPT
	GSTIN           string `json:"gstin"`
	PlaceOfSupply   string `json:"placeOfSupply"`
	PAN             string `json:"pan"`
	ExemptionReason string `json:"exemptionReason"`
	CurrencyCode    string `json:"currencyCode"`
	PaymentTerms    string `json:"paymentTerms"`
	PriceList       string `json:"priceList"`
	IsActive        bool   `json:"isActive"`
	AuditFields
}
