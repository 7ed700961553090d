package mapping

import (
	"time"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/models"
)

// ToModelBill converts a domain Bill to a model Bill. A zero bill date maps
// to NULL.
func ToModelBill(d domain.Bill) models.Bill {
	var billDate *time.Time
	if !d.Date.IsZero() {
		dateCopy := d.Date
		billDate = &dateCopy
	}
	return models.Bill{
		BillID:         d.BillID,
		OrganizationID: d.OrganizationID,
		VendorID:       d.VendorID,
		BillNumber:     d.BillNumber,
		BillDate:       billDate,
		Total:          d.Total,
		AmountPaid:     d.AmountPaid,
		CurrencyCode:   d.CurrencyCode,
		Notes:          d.Notes,
		AuditFields:    toModelAuditFields(d.AuditFields),
	}
}

// ToDomainBill converts a model Bill to a domain Bill
func ToDomainBill(m models.Bill) domain.Bill {
	var date time.Time
	if m.BillDate != nil {
		date = *m.BillDate
	}
	return domain.Bill{
		BillID:         m.BillID,
		OrganizationID: m.OrganizationID,
		VendorID:       m.VendorID,
		BillNumber:     m.BillNumber,
		Date:           date,
		Total:          m.Total,
		AmountPaid:     m.AmountPaid,
		CurrencyCode:   m.CurrencyCode,
		Notes:          m.Notes,
		AuditFields:    toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBillSlice converts a slice of model Bills
func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}
