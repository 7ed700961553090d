package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment with its allocations.
	FindPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves payments of an organization, newest first.
	ListPayments(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a payment, its allocation rows, and the matching
	// amount_paid increments on the allocated bills in a single transaction.
	SavePayment(ctx context.Context, payment domain.Payment, billIncrements map[string]decimal.Decimal) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
