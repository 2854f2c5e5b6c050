package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/audient-hq/audient-backend/internal/domain/client"
	"github.com/audient-hq/audient-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

const clientColumns = `id, user_id, client_name, client_code, industry_sector, company_size,
	headquarters_location, primary_office_location, website_domain,
	client_tier, engagement_health, is_active, created_at, updated_at`

func scanClient(row pgx.Row) (client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID, &c.UserID, &c.ClientName, &c.ClientCode, &c.IndustrySector, &c.CompanySize,
		&c.HeadquartersLocation, &c.PrimaryOfficeLocation, &c.WebsiteDomain,
		&c.ClientTier, &c.EngagementHealth, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements client.ClientRepository.
func (r *clientRepositoryImpl) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (
			id, user_id, client_name, client_code, industry_sector, company_size,
			headquarters_location, primary_office_location, website_domain, client_tier
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + clientColumns

	created, err := scanClient(q.QueryRow(ctx, query,
		uuid.NewString(),
		newClient.UserID,
		newClient.ClientName,
		newClient.ClientCode,
		newClient.IndustrySector,
		newClient.CompanySize,
		newClient.HeadquartersLocation,
		newClient.PrimaryOfficeLocation,
		newClient.WebsiteDomain,
		newClient.ClientTier,
	))
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return created, nil
}

// List implements client.ClientRepository.
func (r *clientRepositoryImpl) List(ctx context.Context, userID string) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []client.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read client rows: %w", err)
	}

	return clients, nil
}

// GetByID implements client.ClientRepository.
func (r *clientRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND user_id = $2`

	c, err := scanClient(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client by ID: %w", err)
	}

	return c, nil
}

// ExistsByCode implements client.ClientRepository.
func (r *clientRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE client_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check client code existence: %w", err)
	}

	return exists, nil
}

// Update implements client.ClientRepository. Absent fields keep their stored
// value via COALESCE; the statement never interpolates field names.
func (r *clientRepositoryImpl) Update(ctx context.Context, id string, userID string, req client.UpdateClientRequest) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET client_name             = COALESCE($1, client_name),
		    industry_sector         = COALESCE($2, industry_sector),
		    company_size            = COALESCE($3, company_size),
		    headquarters_location   = COALESCE($4, headquarters_location),
		    primary_office_location = COALESCE($5, primary_office_location),
		    website_domain          = COALESCE($6, website_domain),
		    client_tier             = COALESCE($7, client_tier),
		    engagement_health       = COALESCE($8, engagement_health),
		    is_active               = COALESCE($9, is_active),
		    updated_at              = NOW()
		WHERE id = $10 AND user_id = $11
		RETURNING ` + clientColumns

	c, err := scanClient(q.QueryRow(ctx, query,
		req.ClientName,
		req.IndustrySector,
		req.CompanySize,
		req.HeadquartersLocation,
		req.PrimaryOfficeLocation,
		req.WebsiteDomain,
		req.ClientTier,
		req.EngagementHealth,
		req.IsActive,
		id,
		userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to update client: %w", err)
	}

	return c, nil
}

// Delete implements client.ClientRepository.
func (r *clientRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

// CreateStakeholder implements client.ClientRepository.
func (r *clientRepositoryImpl) CreateStakeholder(ctx context.Context, s client.Stakeholder) (client.Stakeholder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stakeholders (id, client_id, contact_name, designation_role, email, phone, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, client_id, contact_name, designation_role, email, phone, notes, created_at, updated_at
	`

	var created client.Stakeholder
	err := q.QueryRow(ctx, query,
		uuid.NewString(), s.ClientID, s.ContactName, s.DesignationRole, s.Email, s.Phone, s.Notes,
	).Scan(
		&created.ID, &created.ClientID, &created.ContactName, &created.DesignationRole,
		&created.Email, &created.Phone, &created.Notes, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return client.Stakeholder{}, fmt.Errorf("failed to create stakeholder: %w", err)
	}

	return created, nil
}

// ListStakeholders implements client.ClientRepository.
func (r *clientRepositoryImpl) ListStakeholders(ctx context.Context, clientID string) ([]client.Stakeholder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, client_id, contact_name, designation_role, email, phone, notes, created_at, updated_at
		FROM stakeholders
		WHERE client_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stakeholders: %w", err)
	}
	defer rows.Close()

	stakeholders := []client.Stakeholder{}
	for rows.Next() {
		var s client.Stakeholder
		if err := rows.Scan(
			&s.ID, &s.ClientID, &s.ContactName, &s.DesignationRole,
			&s.Email, &s.Phone, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stakeholder row: %w", err)
		}
		stakeholders = append(stakeholders, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stakeholder rows: %w", err)
	}

	return stakeholders, nil
}

// DeleteStakeholder implements client.ClientRepository.
func (r *clientRepositoryImpl) DeleteStakeholder(ctx context.Context, id string, clientID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM stakeholders WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete stakeholder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrStakeholderNotFound
	}

	return nil
}
