package mapping

import (
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/models"
)

// ToModelOrganization converts a domain Organization to a model Organization
func ToModelOrganization(d domain.Organization) models.Organization {
	return models.Organization{
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		GSTIN:          d.GSTIN,
		StateCode:      d.StateCode,
		CurrencyCode:   d.CurrencyCode,
		IsActive:       d.IsActive,
		AuditFields:    toModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrganization converts a model Organization to a domain Organization
func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		GSTIN:          m.GSTIN,
		StateCode:      m.StateCode,
		CurrencyCode:   m.CurrencyCode,
		IsActive:       m.IsActive,
		AuditFields:    toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrganizationSlice converts a slice of model Organizations
func ToDomainOrganizationSlice(ms []models.Organization) []domain.Organization {
	ds := make([]domain.Organization, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrganization(m)
	}
	return ds
}
