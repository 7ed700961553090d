package dto

import (
	"time"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// CreateOrganizationRequest defines the data needed to create a new organization.
type CreateOrganizationRequest struct {
	Name         string `json:"name" binding:"required"`
	GSTIN        string `json:"gstin" binding:"omitempty,len=15"`
	StateCode    string `json:"stateCode" binding:"omitempty,len=2,numeric"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
}

// OrganizationResponse defines the data returned for an organization.
type OrganizationResponse struct {
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	GSTIN          string    `json:"gstin"`
	StateCode      string    `json:"stateCode"`
	CurrencyCode   string    `json:"currencyCode"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

// ToOrganizationResponse converts a domain.Organization to OrganizationResponse DTO.
func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: org.OrganizationID,
		Name:           org.Name,
		GSTIN:          org.GSTIN,
		StateCode:      org.StateCode,
		CurrencyCode:   org.CurrencyCode,
		IsActive:       org.IsActive,
		CreatedAt:      org.CreatedAt,
		CreatedBy:      org.CreatedBy,
	}
}

// ToListOrganizationResponse converts a slice of domain.Organization to DTOs.
func ToListOrganizationResponse(orgs []domain.Organization) []OrganizationResponse {
	res := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		res[i] = ToOrganizationResponse(&org)
	}
	return res
}
