package domain

// Organization represents an isolated tenant (the seller) owning customers,
// invoices, bills and payments. Every API request is scoped to one
// organization via the x-organization-id header.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary Key (e.g., UUID)
	Name           string `json:"name"`           // Legal/trading name of the business
	GSTIN          string `json:"gstin"`          // 15-char GST registration id of the seller
	StateCode      string `json:"stateCode"`      // 2-digit GST state code, e.g. "27" for Maharashtra
	CurrencyCode   string `json:"currencyCode"`   // Default currency, e.g. "INR"
	IsActive       bool   `json:"isActive"`       // Soft delete or status flag
	AuditFields
}
