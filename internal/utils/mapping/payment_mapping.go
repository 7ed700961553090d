package mapping

import (
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment. Allocations
// are mapped separately via ToModelPaymentAllocation.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		OrganizationID: d.OrganizationID,
		VendorID:       d.VendorID,
		Amount:         d.Amount,
		PaymentDate:    d.PaymentDate,
		PaymentMode:    d.PaymentMode,
		Reference:      d.Reference,
		Notes:          d.Notes,
		ExcessAmount:   d.ExcessAmount,
		AuditFields:    toModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:      m.PaymentID,
		OrganizationID: m.OrganizationID,
		VendorID:       m.VendorID,
		Amount:         m.Amount,
		PaymentDate:    m.PaymentDate,
		PaymentMode:    m.PaymentMode,
		Reference:      m.Reference,
		Notes:          m.Notes,
		ExcessAmount:   m.ExcessAmount,
		AuditFields:    toDomainAuditFields(m.AuditFields),
	}
}

// ToModelPaymentAllocation converts one allocation entry to its row model.
func ToModelPaymentAllocation(allocationID, paymentID string, d domain.BillAllocation) models.PaymentAllocation {
	return models.PaymentAllocation{
		AllocationID:  allocationID,
		PaymentID:     paymentID,
		BillID:        d.BillID,
		Amount:        d.Payment,
		PaymentMadeOn: d.PaymentMadeOn,
	}
}

// ToDomainBillAllocation converts a row model back to the domain entry.
func ToDomainBillAllocation(m models.PaymentAllocation) domain.BillAllocation {
	return domain.BillAllocation{
		BillID:        m.BillID,
		Payment:       m.Amount,
		PaymentMadeOn: m.PaymentMadeOn,
	}
}

// ToDomainBillAllocationSlice converts a slice of allocation rows
func ToDomainBillAllocationSlice(ms []models.PaymentAllocation) []domain.BillAllocation {
	ds := make([]domain.BillAllocation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBillAllocation(m)
	}
	return ds
}
