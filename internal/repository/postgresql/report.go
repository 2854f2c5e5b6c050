package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/audient-hq/audient-backend/internal/domain/report"
	"github.com/audient-hq/audient-backend/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// EmployeesWithLastLogin implements report.ReportRepository.
func (r *reportRepositoryImpl) EmployeesWithLastLogin(ctx context.Context, organizationID string) ([]report.EmployeeLastLogin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.role, u.login_count, u.created_at,
		       a.login_at AS last_login_at, a.latitude AS last_latitude, a.longitude AS last_longitude
		FROM users u
		LEFT JOIN LATERAL (
			SELECT login_at, latitude, longitude
			FROM attendance
			WHERE user_id = u.id
			ORDER BY login_at DESC
			LIMIT 1
		) a ON true
		WHERE u.organization_id = $1
		ORDER BY a.login_at DESC NULLS LAST
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with last login: %w", err)
	}
	defer rows.Close()

	employees := []report.EmployeeLastLogin{}
	for rows.Next() {
		var emp report.EmployeeLastLogin
		var createdAt time.Time
		var lastLoginAt *time.Time
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.LoginCount, &createdAt,
			&lastLoginAt, &emp.LastLatitude, &emp.LastLongitude,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		emp.CreatedAt = createdAt.Format(time.RFC3339)
		if lastLoginAt != nil {
			formatted := lastLoginAt.Format(time.RFC3339)
			emp.LastLoginAt = &formatted
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// AttendanceByDate implements report.ReportRepository. Matching is on the
// stored timestamp's date component, not the organization's local calendar
// date.
func (r *reportRepositoryImpl) AttendanceByDate(ctx context.Context, organizationID string, date time.Time) ([]report.DateRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, u.name, u.email, u.role,
		       a.login_at, a.latitude, a.longitude, a.period
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE u.organization_id = $1
		  AND a.login_at::date = $2::date
		ORDER BY a.login_at DESC
	`

	rows, err := q.Query(ctx, query, organizationID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	records := []report.DateRecord{}
	for rows.Next() {
		var rec report.DateRecord
		var loginAt time.Time
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Name, &rec.Email, &rec.Role,
			&loginAt, &rec.Latitude, &rec.Longitude, &rec.Period,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		rec.LoginAt = loginAt.Format(time.RFC3339)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}

// MonthSummary implements report.ReportRepository. Days without logins have
// no row and therefore no key in the result.
func (r *reportRepositoryImpl) MonthSummary(ctx context.Context, organizationID string, year int, month int) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.login_at::date AS day, COUNT(*) AS count
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE u.organization_id = $1
		  AND EXTRACT(YEAR FROM a.login_at) = $2
		  AND EXTRACT(MONTH FROM a.login_at) = $3
		GROUP BY a.login_at::date
		ORDER BY day
	`

	rows, err := q.Query(ctx, query, organizationID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get month summary: %w", err)
	}
	defer rows.Close()

	days := map[string]int{}
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		days[day.Format("2006-01-02")] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summary rows: %w", err)
	}

	return days, nil
}

// EmployeeHistory implements report.ReportRepository.
func (r *reportRepositoryImpl) EmployeeHistory(ctx context.Context, employeeID string, limit int) ([]report.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, login_at, latitude, longitude, period
		FROM attendance
		WHERE user_id = $1
		ORDER BY login_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee history: %w", err)
	}
	defer rows.Close()

	entries := []report.HistoryEntry{}
	for rows.Next() {
		var entry report.HistoryEntry
		var loginAt time.Time
		if err := rows.Scan(&entry.ID, &loginAt, &entry.Latitude, &entry.Longitude, &entry.Period); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entry.LoginAt = loginAt.Format(time.RFC3339)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return entries, nil
}
