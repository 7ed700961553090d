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
	"github.com/vyaparbooks/billing_app/internal/utils/allocation"
	"github.com/vyaparbooks/billing_app/internal/utils/mapping"
)

// PaymentService handles business logic related to vendor payments. The
// oldest-first sweep itself lives in the allocation package; this layer loads
// the bills, applies caller overrides, and persists the result atomically.
type PaymentService struct {
	paymentRepo  portsrepo.PaymentRepositoryFacade
	billRepo     portsrepo.BillRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(pr portsrepo.PaymentRepositoryFacade, br portsrepo.BillRepositoryFacade, cr portsrepo.CustomerRepositoryFacade) portssvc.PaymentSvcFacade {
	return &PaymentService{
		paymentRepo:  pr,
		billRepo:     br,
		customerRepo: cr,
	}
}

// Ensure PaymentService implements the facade interface
var _ portssvc.PaymentSvcFacade = (*PaymentService)(nil)

// PreviewAllocation computes how an amount would spread oldest-first across
// the vendor's outstanding bills. Nothing is persisted; a non-positive
// amount simply yields an empty allocation.
func (s *PaymentService) PreviewAllocation(ctx context.Context, organizationID string, req dto.PreviewAllocationRequest) (allocation.Allocation, allocation.Totals, error) {
	asOf := paymentDateOrNow(req.PaymentDate)

	bills, err := s.resolveBills(ctx, organizationID, req.VendorID, req.Bills)
	if err != nil {
		return nil, allocation.Totals{}, err
	}

	alloc := allocation.AutoAllocate(req.Amount, bills, asOf)
	totals := allocation.CalculateTotals(alloc, req.Amount)
	return alloc, totals, nil
}

// CreatePayment records a payment and applies its allocations to the bills.
// With no caller overrides the amount is auto-allocated oldest-first; with
// overrides each split is validated against the bill's open balance.
func (s *PaymentService) CreatePayment(ctx context.Context, organizationID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, organizationID, req.VendorID); err != nil {
		return nil, fmt.Errorf("failed to validate vendor: %w", err)
	}

	asOf := paymentDateOrNow(req.PaymentDate)

	bills, err := s.billRepo.ListOutstandingBills(ctx, organizationID, req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding bills: %w", err)
	}

	var alloc allocation.Allocation
	if len(req.Allocations) == 0 {
		alloc = allocation.AutoAllocate(req.Amount, bills, asOf)
	} else {
		alloc, err = s.applyOverrides(bills, req.Allocations, asOf)
		if err != nil {
			return nil, err
		}
	}

	totals := allocation.CalculateTotals(alloc, req.Amount)
	if totals.AmountInExcess.IsNegative() {
		return nil, fmt.Errorf("%w: allocations exceed the payment amount", apperrors.ErrValidation)
	}

	entries := alloc.Allocations()
	billIncrements := make(map[string]decimal.Decimal, len(entries))
	for _, entry := range entries {
		billIncrements[entry.BillID] = entry.Payment
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:      uuid.NewString(),
		OrganizationID: organizationID,
		VendorID:       req.VendorID,
		Amount:         req.Amount,
		PaymentDate:    asOf,
		PaymentMode:    req.PaymentMode,
		Reference:      req.Reference,
		Notes:          req.Notes,
		ExcessAmount:   totals.AmountInExcess,
		Allocations:    entries,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment, billIncrements); err != nil {
		logger.Error("Failed to save payment in repository", slog.String("error", err.Error()), slog.String("vendor_id", req.VendorID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("vendor_id", req.VendorID), slog.Int("allocated_bills", len(entries)))
	return &payment, nil
}

// GetPaymentByID retrieves a payment with its allocations.
func (s *PaymentService) GetPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, organizationID, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment by id: %w", err)
	}
	return payment, nil
}

// ListPayments retrieves payments of an organization, newest first.
func (s *PaymentService) ListPayments(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	payments, err := s.paymentRepo.ListPayments(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// resolveBills loads the vendor's outstanding bills, or normalizes an
// inline bill listing when the caller already has one.
func (s *PaymentService) resolveBills(ctx context.Context, organizationID, vendorID string, payloads []map[string]any) ([]domain.Bill, error) {
	if len(payloads) > 0 {
		return mapping.BillsFromPayload(payloads), nil
	}
	if vendorID == "" {
		return nil, fmt.Errorf("%w: either vendorID or bills must be provided", apperrors.ErrValidation)
	}
	bills, err := s.billRepo.ListOutstandingBills(ctx, organizationID, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding bills: %w", err)
	}
	return bills, nil
}

// applyOverrides builds an allocation from caller-edited splits. Overrides
// referencing unknown bills or exceeding a bill's open balance are rejected;
// non-positive amounts drop the bill from the allocation.
func (s *PaymentService) applyOverrides(bills []domain.Bill, overrides []dto.PaymentAllocationOverride, asOf time.Time) (allocation.Allocation, error) {
	billsByID := make(map[string]domain.Bill, len(bills))
	for _, bill := range bills {
		billsByID[bill.BillID] = bill
	}

	alloc := allocation.Allocation{}
	for _, override := range overrides {
		bill, ok := billsByID[override.BillID]
		if !ok {
			return nil, fmt.Errorf("%w: bill %s has no open balance for this vendor", apperrors.ErrValidation, override.BillID)
		}
		if override.Amount.GreaterThan(bill.AmountDue()) {
			return nil, fmt.Errorf("%w: allocation for bill %s exceeds its open balance", apperrors.ErrValidation, override.BillID)
		}
		alloc.SetBillPayment(override.BillID, override.Amount, asOf)
	}
	return alloc, nil
}

func paymentDateOrNow(date *time.Time) time.Time {
	if date != nil && !date.IsZero() {
		return *date
	}
	return time.Now()
}
