package postgresql

import (
	"context"
	"fmt"

	"github.com/audient-hq/audient-backend/internal/domain/location"
	"github.com/audient-hq/audient-backend/internal/pkg/database"
	"github.com/google/uuid"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.ProfileRepository {
	return &locationRepositoryImpl{db: db}
}

// Create implements location.ProfileRepository.
func (r *locationRepositoryImpl) Create(ctx context.Context, p location.Profile) (location.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO location_profiles (id, user_id, name, type, address, latitude, longitude, use_current_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, name, type, address, latitude, longitude, use_current_location, created_at
	`

	var created location.Profile
	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.UserID, p.Name, p.Type, p.Address, p.Latitude, p.Longitude, p.UseCurrentLocation,
	).Scan(
		&created.ID, &created.UserID, &created.Name, &created.Type, &created.Address,
		&created.Latitude, &created.Longitude, &created.UseCurrentLocation, &created.CreatedAt,
	)
	if err != nil {
		return location.Profile{}, fmt.Errorf("failed to create location profile: %w", err)
	}

	return created, nil
}

// List implements location.ProfileRepository.
func (r *locationRepositoryImpl) List(ctx context.Context, userID string) ([]location.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, name, type, address, latitude, longitude, use_current_location, created_at
		FROM location_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list location profiles: %w", err)
	}
	defer rows.Close()

	profiles := []location.Profile{}
	for rows.Next() {
		var p location.Profile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Type, &p.Address,
			&p.Latitude, &p.Longitude, &p.UseCurrentLocation, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read location profile rows: %w", err)
	}

	return profiles, nil
}

// Delete implements location.ProfileRepository.
func (r *locationRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM location_profiles WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete location profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrProfileNotFound
	}

	return nil
}
