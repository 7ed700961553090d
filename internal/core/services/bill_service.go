package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
	"github.com/vyaparbooks/billing_app/internal/middleware"
)

// BillService handles business logic related to vendor bills.
type BillService struct {
	billRepo     portsrepo.BillRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewBillService creates a new BillService.
func NewBillService(br portsrepo.BillRepositoryFacade, cr portsrepo.CustomerRepositoryFacade) portssvc.BillSvcFacade {
	return &BillService{
		billRepo:     br,
		customerRepo: cr,
	}
}

// Ensure BillService implements the facade interface
var _ portssvc.BillSvcFacade = (*BillService)(nil)

// CreateBill records a new vendor bill with nothing paid yet. Date may be
// absent for imported bills; the stored zero value marks the date unknown.
func (s *BillService) CreateBill(ctx context.Context, organizationID string, req dto.CreateBillRequest, creatorUserID string) (*domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Total.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: bill total must be positive", apperrors.ErrValidation)
	}

	vendor, err := s.customerRepo.FindCustomerByID(ctx, organizationID, req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate vendor: %w", err)
	}

	var billDate time.Time
	if req.Date != nil {
		billDate = *req.Date
	}

	now := time.Now()
	bill := domain.Bill{
		BillID:         uuid.NewString(),
		OrganizationID: organizationID,
		VendorID:       req.VendorID,
		BillNumber:     req.BillNumber,
		Date:           billDate,
		Total:          req.Total,
		AmountPaid:     decimal.Zero,
		CurrencyCode:   vendor.CurrencyCode,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		logger.Error("Failed to save bill in repository", slog.String("error", err.Error()), slog.String("bill_number", req.BillNumber))
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	logger.Info("Bill created successfully", slog.String("bill_id", bill.BillID), slog.String("vendor_id", req.VendorID))
	return &bill, nil
}

// GetBillByID retrieves a bill scoped to an organization.
func (s *BillService) GetBillByID(ctx context.Context, organizationID, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, organizationID, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill by id: %w", err)
	}
	return bill, nil
}

// ListBills retrieves bills of an organization, optionally filtered by vendor.
func (s *BillService) ListBills(ctx context.Context, organizationID string, vendorID string, limit int, offset int) ([]domain.Bill, error) {
	if limit <= 0 {
		limit = 20
	}
	bills, err := s.billRepo.ListBills(ctx, organizationID, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	if bills == nil {
		return []domain.Bill{}, nil
	}
	return bills, nil
}

// ListOutstandingBills retrieves a vendor's bills with an open balance,
// oldest first.
func (s *BillService) ListOutstandingBills(ctx context.Context, organizationID, vendorID string) ([]domain.Bill, error) {
	bills, err := s.billRepo.ListOutstandingBills(ctx, organizationID, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding bills: %w", err)
	}
	if bills == nil {
		return []domain.Bill{}, nil
	}
	return bills, nil
}
