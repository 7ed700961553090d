package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
	"github.com/vyaparbooks/billing_app/internal/models"
	"github.com/vyaparbooks/billing_app/internal/utils/mapping"
	"github.com/vyaparbooks/billing_app/internal/utils/pagination"
)

const invoiceColumns = `
	invoice_id, organization_id, customer_id, invoice_number, invoice_date, due_date, status,
	customer_snapshot, regime, regime_reason,
	sub_total, cgst_total, sgst_total, igst_total, grand_total,
	currency_code, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.InvoiceID, &inv.OrganizationID, &inv.CustomerID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate, &inv.Status,
		&inv.CustomerSnapshot, &inv.Regime, &inv.RegimeReason,
		&inv.SubTotal, &inv.CGSTTotal, &inv.SGSTTotal, &inv.IGSTTotal, &inv.GrandTotal,
		&inv.CurrencyCode, &inv.Notes,
		&inv.CreatedAt, &inv.CreatedBy, &inv.LastUpdatedAt, &inv.LastUpdatedBy,
	)
	return inv, err
}

// SaveInvoice persists an invoice header and its lines in one transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error {
	modelInv, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return fmt.Errorf("failed to map invoice %s: %w", invoice.InvoiceID, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelInv.InvoiceID, modelInv.OrganizationID, modelInv.CustomerID, modelInv.InvoiceNumber, modelInv.InvoiceDate, modelInv.DueDate, modelInv.Status,
		modelInv.CustomerSnapshot, modelInv.Regime, modelInv.RegimeReason,
		modelInv.SubTotal, modelInv.CGSTTotal, modelInv.SGSTTotal, modelInv.IGSTTotal, modelInv.GrandTotal,
		modelInv.CurrencyCode, modelInv.Notes,
		modelInv.CreatedAt, modelInv.CreatedBy, modelInv.LastUpdatedAt, modelInv.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice %s: %w", modelInv.InvoiceID, err)
	}

	lineQuery := `
		INSERT INTO invoice_lines (line_id, invoice_id, description, quantity, unit_price, amount, gst_rate, cgst_amount, sgst_amount, igst_amount, tax_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, line := range lines {
		modelLine := mapping.ToModelInvoiceLine(line)
		_, err = tx.Exec(ctx, lineQuery,
			modelLine.LineID, modelLine.InvoiceID, modelLine.Description,
			modelLine.Quantity, modelLine.UnitPrice, modelLine.Amount, modelLine.GSTRate,
			modelLine.CGSTAmount, modelLine.SGSTAmount, modelLine.IGSTAmount, modelLine.TaxAmount, modelLine.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert invoice line %s: %w", modelLine.LineID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateInvoiceStatus transitions an invoice's status.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, organizationID, invoiceID string, status domain.InvoiceStatus, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE invoices SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND invoice_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, organizationID, invoiceID, string(status), updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update status of invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindInvoiceByID retrieves an invoice header scoped to an organization.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE organization_id = $1 AND invoice_id = $2;
	`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, organizationID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by id %s: %w", invoiceID, err)
	}

	domainInv, err := mapping.ToDomainInvoice(m)
	if err != nil {
		return nil, fmt.Errorf("failed to map invoice %s: %w", invoiceID, err)
	}
	return &domainInv, nil
}

// FindLinesByInvoiceID retrieves the line items of an invoice.
func (r *PgxInvoiceRepository) FindLinesByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceLine, error) {
	query := `
		SELECT line_id, invoice_id, description, quantity, unit_price, amount, gst_rate, cgst_amount, sgst_amount, igst_amount, tax_amount, line_total
		FROM invoice_lines
		WHERE invoice_id = $1
		ORDER BY line_id;
	`

	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice lines: %w", err)
	}
	defer rows.Close()

	modelLines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceLine, error) {
		var line models.InvoiceLine
		err := row.Scan(
			&line.LineID, &line.InvoiceID, &line.Description,
			&line.Quantity, &line.UnitPrice, &line.Amount, &line.GSTRate,
			&line.CGSTAmount, &line.SGSTAmount, &line.IGSTAmount, &line.TaxAmount, &line.LineTotal,
		)
		return line, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect invoice line rows: %w", err)
	}

	return mapping.ToDomainInvoiceLineSlice(modelLines), nil
}

// ListInvoices retrieves a page of invoices ordered by (invoice_date,
// created_at) descending. The returned token points past the last row.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE organization_id = $1
	`
	args := []interface{}{organizationID}

	if nextToken != nil && *nextToken != "" {
		docDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (invoice_date, created_at) < ($2, $3)`
		args = append(args, docDate, createdAt)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY invoice_date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to collect invoice rows: %w", err)
	}

	var token *string
	if len(modelInvoices) > limit {
		modelInvoices = modelInvoices[:limit]
		last := modelInvoices[len(modelInvoices)-1]
		encoded := pagination.EncodeToken(last.InvoiceDate, last.CreatedAt)
		token = &encoded
	}

	invoices := make([]domain.Invoice, len(modelInvoices))
	for i, m := range modelInvoices {
		invoices[i], err = mapping.ToDomainInvoice(m)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to map invoice %s: %w", m.InvoiceID, err)
		}
	}

	return invoices, token, nil
}
