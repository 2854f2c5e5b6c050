package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/audient-hq/audient-backend/internal/domain/recording"
	"github.com/audient-hq/audient-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type recordingRepositoryImpl struct {
	db *database.DB
}

func NewRecordingRepository(db *database.DB) recording.RecordingRepository {
	return &recordingRepositoryImpl{db: db}
}

// Create implements recording.RecordingRepository.
func (r *recordingRepositoryImpl) Create(ctx context.Context, rec recording.Recording) (recording.Recording, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO recordings (id, user_id, transcript, duration_seconds)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, transcript, duration_seconds, created_at
	`

	var created recording.Recording
	err := q.QueryRow(ctx, query, uuid.NewString(), rec.UserID, rec.Transcript, rec.DurationSeconds).Scan(
		&created.ID, &created.UserID, &created.Transcript, &created.DurationSeconds, &created.CreatedAt,
	)
	if err != nil {
		return recording.Recording{}, fmt.Errorf("failed to create recording: %w", err)
	}

	return created, nil
}

// List implements recording.RecordingRepository.
func (r *recordingRepositoryImpl) List(ctx context.Context, userID string) ([]recording.Recording, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, transcript, duration_seconds, created_at
		FROM recordings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recordings: %w", err)
	}
	defer rows.Close()

	recordings := []recording.Recording{}
	for rows.Next() {
		var rec recording.Recording
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Transcript, &rec.DurationSeconds, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recording row: %w", err)
		}
		recordings = append(recordings, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recording rows: %w", err)
	}

	return recordings, nil
}

// GetByID implements recording.RecordingRepository.
func (r *recordingRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (recording.Recording, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, transcript, duration_seconds, created_at
		FROM recordings
		WHERE id = $1 AND user_id = $2
	`

	var rec recording.Recording
	err := q.QueryRow(ctx, query, id, userID).Scan(
		&rec.ID, &rec.UserID, &rec.Transcript, &rec.DurationSeconds, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recording.Recording{}, recording.ErrRecordingNotFound
		}
		return recording.Recording{}, fmt.Errorf("failed to get recording by ID: %w", err)
	}

	return rec, nil
}

// Delete implements recording.RecordingRepository.
func (r *recordingRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM recordings WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete recording: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recording.ErrRecordingNotFound
	}

	return nil
}
