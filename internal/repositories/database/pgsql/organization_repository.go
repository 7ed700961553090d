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

type PgxOrganizationRepository struct {
	BaseRepository
}

// newPgxOrganizationRepository creates a new repository for organization data.
func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

// SaveOrganization inserts a new organization.
func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	modelOrg := mapping.ToModelOrganization(org)

	query := `
		INSERT INTO organizations (organization_id, name, gstin, state_code, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelOrg.OrganizationID,
		modelOrg.Name,
		modelOrg.GSTIN,
		modelOrg.StateCode,
		modelOrg.CurrencyCode,
		modelOrg.IsActive,
		modelOrg.CreatedAt,
		modelOrg.CreatedBy,
		modelOrg.LastUpdatedAt,
		modelOrg.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save organization %s: %w", modelOrg.OrganizationID, err)
	}
	return nil
}

// FindOrganizationByID retrieves an organization by its id.
func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, gstin, state_code, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM organizations
		WHERE organization_id = $1;
	`
	var modelOrg models.Organization
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(
		&modelOrg.OrganizationID,
		&modelOrg.Name,
		&modelOrg.GSTIN,
		&modelOrg.StateCode,
		&modelOrg.CurrencyCode,
		&modelOrg.IsActive,
		&modelOrg.CreatedAt,
		&modelOrg.CreatedBy,
		&modelOrg.LastUpdatedAt,
		&modelOrg.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by id %s: %w", organizationID, err)
	}

	domainOrg := mapping.ToDomainOrganization(modelOrg)
	return &domainOrg, nil
}

// ListOrganizations retrieves all active organizations.
func (r *PgxOrganizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	query := `
		SELECT organization_id, name, gstin, state_code, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM organizations
		WHERE is_active = TRUE
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations: %w", err)
	}
	defer rows.Close()

	modelOrgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Organization, error) {
		var org models.Organization
		err := row.Scan(
			&org.OrganizationID,
			&org.Name,
			&org.GSTIN,
			&org.StateCode,
			&org.CurrencyCode,
			&org.IsActive,
			&org.CreatedAt,
			&org.CreatedBy,
			&org.LastUpdatedAt,
			&org.LastUpdatedBy,
		)
		return org, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect organization rows: %w", err)
	}

	return mapping.ToDomainOrganizationSlice(modelOrgs), nil
}
