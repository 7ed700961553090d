package repositories

import (
	"context"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// BillReader defines read operations for bill data
type BillReader interface {
	// FindBillByID retrieves a bill scoped to an organization.
	FindBillByID(ctx context.Context, organizationID, billID string) (*domain.Bill, error)

	// ListBills retrieves bills of an organization, optionally filtered by vendor.
	ListBills(ctx context.Context, organizationID string, vendorID string, limit int, offset int) ([]domain.Bill, error)

	// ListOutstandingBills retrieves bills with an open balance for a vendor,
	// ordered by bill date ascending with NULL dates last.
	ListOutstandingBills(ctx context.Context, organizationID, vendorID string) ([]domain.Bill, error)
}

// BillWriter defines write operations for bill data
type BillWriter interface {
	// SaveBill persists a new bill.
	SaveBill(ctx context.Context, bill domain.Bill) error
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
