package services

import (
	"context"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	"github.com/vyaparbooks/billing_app/internal/dto"
	"github.com/vyaparbooks/billing_app/internal/utils/allocation"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment with its allocations.
	GetPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves payments of an organization, newest first.
	ListPayments(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// PreviewAllocation computes how an amount would spread oldest-first
	// across the vendor's outstanding bills. Nothing is persisted.
	PreviewAllocation(ctx context.Context, organizationID string, req dto.PreviewAllocationRequest) (allocation.Allocation, allocation.Totals, error)

	// CreatePayment records a payment and applies its allocations to the bills.
	CreatePayment(ctx context.Context, organizationID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
