package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
	"github.com/vyaparbooks/billing_app/internal/models"
	"github.com/vyaparbooks/billing_app/internal/utils/mapping"
)

const paymentColumns = `
	payment_id, organization_id, vendor_id, amount, payment_date, payment_mode, reference, notes, excess_amount,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.PaymentID, &p.OrganizationID, &p.VendorID, &p.Amount, &p.PaymentDate, &p.PaymentMode, &p.Reference, &p.Notes, &p.ExcessAmount,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

// SavePayment persists the payment header, its allocation rows, and the
// matching amount_paid increments on the allocated bills in one transaction.
// The bill update guards total >= amount_paid + increment so two concurrent
// payments cannot overpay a bill.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, billIncrements map[string]decimal.Decimal) error {
	m := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.PaymentID, m.OrganizationID, m.VendorID, m.Amount, m.PaymentDate, m.PaymentMode, m.Reference, m.Notes, m.ExcessAmount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, err)
	}

	allocationQuery := `
		INSERT INTO payment_allocations (allocation_id, payment_id, bill_id, amount, payment_made_on)
		VALUES ($1, $2, $3, $4, $5);
	`
	billQuery := `
		UPDATE bills SET amount_paid = amount_paid + $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND bill_id = $2 AND total >= amount_paid + $3;
	`

	for _, entry := range payment.Allocations {
		allocation := mapping.ToModelPaymentAllocation(uuid.NewString(), payment.PaymentID, entry)
		_, err = tx.Exec(ctx, allocationQuery,
			allocation.AllocationID, allocation.PaymentID, allocation.BillID, allocation.Amount, allocation.PaymentMadeOn,
		)
		if err != nil {
			return fmt.Errorf("failed to insert allocation for bill %s: %w", entry.BillID, err)
		}

		increment, ok := billIncrements[entry.BillID]
		if !ok {
			increment = entry.Payment
		}
		tag, err := tx.Exec(ctx, billQuery,
			payment.OrganizationID, entry.BillID, increment, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to apply payment to bill %s: %w", entry.BillID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: bill %s cannot absorb the allocated amount", apperrors.ErrValidation, entry.BillID)
		}
	}

	return r.Commit(ctx, tx)
}

// FindPaymentByID retrieves a payment with its allocations.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE organization_id = $1 AND payment_id = $2;
	`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, organizationID, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by id %s: %w", paymentID, err)
	}

	allocations, err := r.findAllocations(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	domainPayment := mapping.ToDomainPayment(m)
	domainPayment.Allocations = allocations
	return &domainPayment, nil
}

// ListPayments retrieves payments of an organization, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE organization_id = $1
		ORDER BY payment_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect payment rows: %w", err)
	}

	payments := make([]domain.Payment, len(modelPayments))
	for i, m := range modelPayments {
		allocations, err := r.findAllocations(ctx, m.PaymentID)
		if err != nil {
			return nil, err
		}
		payments[i] = mapping.ToDomainPayment(m)
		payments[i].Allocations = allocations
	}

	return payments, nil
}

func (r *PgxPaymentRepository) findAllocations(ctx context.Context, paymentID string) ([]domain.BillAllocation, error) {
	query := `
		SELECT allocation_id, payment_id, bill_id, amount, payment_made_on
		FROM payment_allocations
		WHERE payment_id = $1
		ORDER BY bill_id;
	`

	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment allocations: %w", err)
	}
	defer rows.Close()

	modelAllocations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PaymentAllocation, error) {
		var a models.PaymentAllocation
		err := row.Scan(&a.AllocationID, &a.PaymentID, &a.BillID, &a.Amount, &a.PaymentMadeOn)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect allocation rows: %w", err)
	}

	return mapping.ToDomainBillAllocationSlice(modelAllocations), nil
}
