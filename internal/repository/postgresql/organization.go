package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

const organizationColumns = `id, name, login_time, logoff_time, timezone, created_at`

func scanOrganization(row pgx.Row) (organization.Organization, error) {
	var o organization.Organization
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.LoginTime,
		&o.LogoffTime,
		&o.Timezone,
		&o.CreatedAt,
	)
	return o, err
}

// Create implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) Create(ctx context.Context, name string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (id, name)
		VALUES ($1, $2)
		RETURNING ` + organizationColumns

	created, err := scanOrganization(q.QueryRow(ctx, query, uuid.NewString(), name))
	if err != nil {
		return organization.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}

	return created, nil
}

// GetByID implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`

	o, err := scanOrganization(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization by ID: %w", err)
	}

	return o, nil
}

// UpdateConfig implements organization.OrganizationRepository. Only the
// present fields of req are written; the statement is fixed and fully
// parameterized, with COALESCE keeping absent fields at their stored value.
func (r *organizationRepositoryImpl) UpdateConfig(ctx context.Context, id string, req organization.UpdateConfigRequest) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE organizations
		SET login_time  = COALESCE($1, login_time),
		    logoff_time = COALESCE($2, logoff_time),
		    timezone    = COALESCE($3, timezone)
		WHERE id = $4
		RETURNING ` + organizationColumns

	o, err := scanOrganization(q.QueryRow(ctx, query, req.LoginTime, req.LogoffTime, req.Timezone, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to update organization config: %w", err)
	}

	return o, nil
}
