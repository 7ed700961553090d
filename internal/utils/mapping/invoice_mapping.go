package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice, marshalling the
// customer snapshot into its JSONB column. Lines are mapped separately.
func ToModelInvoice(d domain.Invoice) (models.Invoice, error) {
	snapshotJSON, err := json.Marshal(d.Snapshot)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to marshal customer snapshot for invoice %s: %w", d.InvoiceID, err)
	}
	return models.Invoice{
		InvoiceID:        d.InvoiceID,
		OrganizationID:   d.OrganizationID,
		CustomerID:       d.CustomerID,
		InvoiceNumber:    d.InvoiceNumber,
		InvoiceDate:      d.InvoiceDate,
		DueDate:          d.DueDate,
		Status:           string(d.Status),
		CustomerSnapshot: snapshotJSON,
		Regime:           string(d.Regime),
		RegimeReason:     d.RegimeReason,
		SubTotal:         d.SubTotal,
		CGSTTotal:        d.CGSTTotal,
		SGSTTotal:        d.SGSTTotal,
		IGSTTotal:        d.IGSTTotal,
		GrandTotal:       d.GrandTotal,
		CurrencyCode:     d.CurrencyCode,
		Notes:            d.Notes,
		AuditFields:      toModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainInvoice converts a model Invoice to a domain Invoice.
func ToDomainInvoice(m models.Invoice) (domain.Invoice, error) {
	var snapshot domain.CustomerSnapshot
	if len(m.CustomerSnapshot) > 0 {
		if err := json.Unmarshal(m.CustomerSnapshot, &snapshot); err != nil {
			return domain.Invoice{}, fmt.Errorf("failed to unmarshal customer snapshot for invoice %s: %w", m.InvoiceID, err)
		}
	}
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		OrganizationID: m.OrganizationID,
		CustomerID:     m.CustomerID,
		InvoiceNumber:  m.InvoiceNumber,
		InvoiceDate:    m.InvoiceDate,
		DueDate:        m.DueDate,
		Status:         domain.InvoiceStatus(m.Status),
		Snapshot:       snapshot,
		Regime:         domain.RegimeKind(m.Regime),
		RegimeReason:   m.RegimeReason,
		SubTotal:       m.SubTotal,
		CGSTTotal:      m.CGSTTotal,
		SGSTTotal:      m.SGSTTotal,
		IGSTTotal:      m.IGSTTotal,
		GrandTotal:     m.GrandTotal,
		CurrencyCode:   m.CurrencyCode,
		Notes:          m.Notes,
		AuditFields:    toDomainAuditFields(m.AuditFields),
	}, nil
}

// ToModelInvoiceLine converts a domain InvoiceLine to a model InvoiceLine
func ToModelInvoiceLine(d domain.InvoiceLine) models.InvoiceLine {
	return models.InvoiceLine{
		LineID:      d.LineID,
		InvoiceID:   d.InvoiceID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Amount:      d.Amount,
		GSTRate:     d.GSTRate,
		CGSTAmount:  d.Tax.CGST,
		SGSTAmount:  d.Tax.SGST,
		IGSTAmount:  d.Tax.IGST,
		TaxAmount:   d.Tax.Total,
		LineTotal:   d.LineTotal,
	}
}

// ToDomainInvoiceLine converts a model InvoiceLine to a domain InvoiceLine
func ToDomainInvoiceLine(m models.InvoiceLine) domain.InvoiceLine {
	return domain.InvoiceLine{
		LineID:      m.LineID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Amount:      m.Amount,
		GSTRate:     m.GSTRate,
		Tax: domain.TaxBreakup{
			CGST:  m.CGSTAmount,
			SGST:  m.SGSTAmount,
			IGST:  m.IGSTAmount,
			Total: m.TaxAmount,
		},
		LineTotal: m.LineTotal,
	}
}

// ToDomainInvoiceLineSlice converts a slice of model InvoiceLines
func ToDomainInvoiceLineSlice(ms []models.InvoiceLine) []domain.InvoiceLine {
	ds := make([]domain.InvoiceLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceLine(m)
	}
	return ds
}
