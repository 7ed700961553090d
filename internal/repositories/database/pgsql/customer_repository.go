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
)

const customerColumns = `
	customer_id, organization_id, name, display_name, company_name, email, phone,
	billing_street, billing_city, billing_state, billing_country, billing_postal_code,
	shipping_street, shipping_city, shipping_state, shipping_country, shipping_postal_code,
	gst_treatment, tax_preference, gstin, place_of_supply, pan, exemption_reason,
	currency_code, payment_terms, price_list, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.CustomerID, &c.OrganizationID, &c.Name, &c.DisplayName, &c.CompanyName, &c.Email, &c.Phone,
		&c.BillingStreet, &c.BillingCity, &c.BillingState, &c.BillingCountry, &c.BillingPostalCode,
		&c.ShippingStreet, &c.ShippingCity, &c.ShippingState, &c.ShippingCountry, &c.ShippingPostalCode,
		&c.GSTTreatment, &c.TaxPreference, &c.GSTIN, &c.PlaceOfSupply, &c.PAN, &c.ExemptionReason,
		&c.CurrencyCode, &c.PaymentTerms, &c.PriceList, &c.IsActive,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	return c, err
}

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.OrganizationID, m.Name, m.DisplayName, m.CompanyName, m.Email, m.Phone,
		m.BillingStreet, m.BillingCity, m.BillingState, m.BillingCountry, m.BillingPostalCode,
		m.ShippingStreet, m.ShippingCity, m.ShippingState, m.ShippingCountry, m.ShippingPostalCode,
		m.GSTTreatment, m.TaxPreference, m.GSTIN, m.PlaceOfSupply, m.PAN, m.ExemptionReason,
		m.CurrencyCode, m.PaymentTerms, m.PriceList, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

// UpdateCustomer persists changes to an existing customer.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		UPDATE customers SET
			name = $3, display_name = $4, company_name = $5, email = $6, phone = $7,
			billing_street = $8, billing_city = $9, billing_state = $10, billing_country = $11, billing_postal_code = $12,
			shipping_street = $13, shipping_city = $14, shipping_state = $15, shipping_country = $16, shipping_postal_code = $17,
			gst_treatment = $18, tax_preference = $19, gstin = $20, place_of_supply = $21, pan = $22, exemption_reason = $23,
			currency_code = $24, payment_terms = $25, price_list = $26,
			last_updated_at = $27, last_updated_by = $28
		WHERE organization_id = $1 AND customer_id = $2;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.OrganizationID, m.CustomerID,
		m.Name, m.DisplayName, m.CompanyName, m.Email, m.Phone,
		m.BillingStreet, m.BillingCity, m.BillingState, m.BillingCountry, m.BillingPostalCode,
		m.ShippingStreet, m.ShippingCity, m.ShippingState, m.ShippingCountry, m.ShippingPostalCode,
		m.GSTTreatment, m.TaxPreference, m.GSTIN, m.PlaceOfSupply, m.PAN, m.ExemptionReason,
		m.CurrencyCode, m.PaymentTerms, m.PriceList,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", m.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateCustomer soft-deletes a customer.
func (r *PgxCustomerRepository) DeactivateCustomer(ctx context.Context, organizationID, customerID string, updatedByUserID string) error {
	query := `
		UPDATE customers SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE organization_id = $1 AND customer_id = $2;
	`

	tag, err := r.Pool.Exec(ctx, query, organizationID, customerID, time.Now(), updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to deactivate customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCustomerByID retrieves a customer scoped to an organization.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE organization_id = $1 AND customer_id = $2;
	`

	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, organizationID, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by id %s: %w", customerID, err)
	}

	domainCustomer := mapping.ToDomainCustomer(m)
	return &domainCustomer, nil
}

// ListCustomers retrieves active customers of an organization.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE organization_id = $1 AND is_active = TRUE
		ORDER BY name
		LIMIT $2 OFFSET $3;
	`

	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	modelCustomers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Customer, error) {
		return scanCustomer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect customer rows: %w", err)
	}

	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}
