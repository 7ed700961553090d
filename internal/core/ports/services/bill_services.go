package services

import (
	"context"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/dto"
)

// BillReaderSvc defines read operations for bill data
type BillReaderSvc interface {
	// GetBillByID retrieves a bill scoped to an organization.
	GetBillByID(ctx context.Context, organizationID, billID string) (*domain.Bill, error)

	// ListBills retrieves bills of an organization, optionally filtered by vendor.
	ListBills(ctx context.Context, organizationID string, vendorID string, limit int, offset int) ([]domain.Bill, error)

	// ListOutstandingBills retrieves a vendor's bills with an open balance,
	// oldest first.
	ListOutstandingBills(ctx context.Context, organizationID, vendorID string) ([]domain.Bill, error)
}

// BillWriterSvc defines write operations for bill data
type BillWriterSvc interface {
	// CreateBill records a new vendor bill.
	CreateBill(ctx context.Context, organizationID string, req dto.CreateBillRequest, creatorUserID string) (*domain.Bill, error)
}

// BillSvcFacade combines all bill-related service interfaces
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
