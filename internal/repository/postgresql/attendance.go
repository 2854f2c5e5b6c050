package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/audient-hq/audient-backend/internal/domain/attendance"
	"github.com/audient-hq/audient-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository. login_at is assigned by
// the store at insert time.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, user_id, latitude, longitude, period)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, login_at, latitude, longitude, period, created_at
	`

	var created attendance.Event
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		event.UserID,
		event.Latitude,
		event.Longitude,
		event.Period,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.LoginAt,
		&created.Latitude,
		&created.Longitude,
		&created.Period,
		&created.CreatedAt,
	)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return created, nil
}

// GetTodayLatest implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetTodayLatest(ctx context.Context, userID string) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, login_at, latitude, longitude, period, created_at
		FROM attendance
		WHERE user_id = $1
		  AND login_at::date = CURRENT_DATE
		ORDER BY login_at DESC
		LIMIT 1
	`

	var event attendance.Event
	err := q.QueryRow(ctx, query, userID).Scan(
		&event.ID,
		&event.UserID,
		&event.LoginAt,
		&event.Latitude,
		&event.Longitude,
		&event.Period,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	return &event, nil
}
