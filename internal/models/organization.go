package models

// Organization represents a tenant row in the organizations table.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary Key
	Name           string `json:"name"`
	GSTIN          string `json:"gstin"`
	StateCode      string `json:"stateCode"` // 2-digit GST state code
	CurrencyCode   string `json:"currencyCode"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}
