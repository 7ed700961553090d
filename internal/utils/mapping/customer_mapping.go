package mapping

import (
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:     d.CustomerID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		DisplayName:    d.DisplayName,
		CompanyName:    d.CompanyName,
		Email:          d.Email,
		Phone:          d.Phone,

		BillingStreet:      d.BillingAddress.Street,
		BillingCity:        d.BillingAddress.City,
		BillingState:       d.BillingAddress.State,
		BillingCountry:     d.BillingAddress.Country,
		BillingPostalCode:  d.BillingAddress.PostalCode,
		ShippingStreet:     d.ShippingAddress.Street,
		ShippingCity:       d.ShippingAddress.City,
		ShippingState:      d.ShippingAddress.State,
		ShippingCountry:    d.ShippingAddress.Country,
		ShippingPostalCode: d.ShippingAddress.PostalCode,

		GSTTreatment:    d.GSTTreatment,
		TaxPreference:   string(d.TaxPreference),
		GSTIN:           d.GSTIN,
		PlaceOfSupply:   d.PlaceOfSupply,
		PAN:             d.PAN,
		ExemptionReason: d.ExemptionReason,
		CurrencyCode:    d.CurrencyCode,
		PaymentTerms:    d.PaymentTerms,
		PriceList:       d.PriceList,
		IsActive:        d.IsActive,
		AuditFields:     toModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:     m.CustomerID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		DisplayName:    m.DisplayName,
		CompanyName:    m.CompanyName,
		Email:          m.Email,
		Phone:          m.Phone,
		BillingAddress: domain.Address{
			Street:     m.BillingStreet,
			City:       m.BillingCity,
			State:      m.BillingState,
			Country:    m.BillingCountry,
			PostalCode: m.BillingPostalCode,
		},
		ShippingAddress: domain.Address{
			Street:     m.ShippingStreet,
			City:       m.ShippingCity,
			State:      m.ShippingState,
			Country:    m.ShippingCountry,
			PostalCode: m.ShippingPostalCode,
		},
		GSTTreatment:    m.GSTTreatment,
		TaxPreference:   domain.TaxPreference(m.TaxPreference),
		GSTIN:           m.GSTIN,
		PlaceOfSupply:   m.PlaceOfSupply,
		PAN:             m.PAN,
		ExemptionReason: m.ExemptionReason,
		CurrencyCode:    m.CurrencyCode,
		PaymentTerms:    m.PaymentTerms,
		PriceList:       m.PriceList,
		IsActive:        m.IsActive,
		AuditFields:     toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
