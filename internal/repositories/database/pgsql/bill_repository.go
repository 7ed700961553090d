package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
	"github.com/vyaparbooks/billing_app/internal/models"
	"github.com/vyaparbooks/billing_app/internal/utils/mapping"
)

const billColumns = `
	bill_id, organization_id, vendor_id, bill_number, bill_date, total, amount_paid,
	currency_code, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxBillRepository struct {
	BaseRepository
}

// newPgxBillRepository creates a new repository for bill data.
func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

func scanBill(row pgx.Row) (models.Bill, error) {
	var b models.Bill
	err := row.Scan(
		&b.BillID, &b.OrganizationID, &b.VendorID, &b.BillNumber, &b.BillDate, &b.Total, &b.AmountPaid,
		&b.CurrencyCode, &b.Notes, &b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy,
	)
	return b, err
}

// SaveBill inserts a new bill.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)

	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.BillID, m.OrganizationID, m.VendorID, m.BillNumber, m.BillDate, m.Total, m.AmountPaid,
		m.CurrencyCode, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save bill %s: %w", m.BillID, err)
	}
	return nil
}

// FindBillByID retrieves a bill scoped to an organization.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, organizationID, billID string) (*domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE organization_id = $1 AND bill_id = $2;
	`

	m, err := scanBill(r.Pool.QueryRow(ctx, query, organizationID, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by id %s: %w", billID, err)
	}

	domainBill := mapping.ToDomainBill(m)
	return &domainBill, nil
}

// ListBills retrieves bills of an organization, optionally filtered by vendor.
func (r *PgxBillRepository) ListBills(ctx context.Context, organizationID string, vendorID string, limit int, offset int) ([]domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE organization_id = $1 AND ($2 = '' OR vendor_id = $2)
		ORDER BY bill_date DESC NULLS FIRST, created_at DESC
		LIMIT $3 OFFSET $4;
	`

	rows, err := r.Pool.Query(ctx, query, organizationID, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	modelBills, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Bill, error) {
		return scanBill(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect bill rows: %w", err)
	}

	return mapping.ToDomainBillSlice(modelBills), nil
}

// ListOutstandingBills retrieves bills with an open balance for a vendor.
// Rows come back oldest first with NULL dates last, the order the allocator
// consumes them in.
func (r *PgxBillRepository) ListOutstandingBills(ctx context.Context, organizationID, vendorID string) ([]domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE organization_id = $1 AND vendor_id = $2 AND total > amount_paid
		ORDER BY bill_date ASC NULLS LAST, created_at ASC;
	`

	rows, err := r.Pool.Query(ctx, query, organizationID, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query outstanding bills: %w", err)
	}
	defer rows.Close()

	modelBills, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Bill, error) {
		return scanBill(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect outstanding bill rows: %w", err)
	}

	return mapping.ToDomainBillSlice(modelBills), nil
}
