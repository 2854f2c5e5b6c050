package report

import (
	"context"
	"time"
)

// ReportRepository defines the read patterns behind the admin review surface.
// Every method takes the organization ID to keep rows tenant-scoped.
type ReportRepository interface {
	// EmployeesWithLastLogin returns every user of the organization with
	// their newest event joined in, ordered by last login descending with
	// never-logged-in users last.
	EmployeesWithLastLogin(ctx context.Context, organizationID string) ([]EmployeeLastLogin, error)

	// AttendanceByDate returns the organization's events whose stored
	// login_at falls on the given date, newest first.
	AttendanceByDate(ctx context.Context, organizationID string, date time.Time) ([]DateRecord, error)

	// MonthSummary returns per-day login counts for one month. Days with no
	// logins are absent from the map.
	MonthSummary(ctx context.Context, organizationID string, year int, month int) (map[string]int, error)

	// EmployeeHistory returns the employee's newest events, capped at limit.
	EmployeeHistory(ctx context.Context, employeeID string, limit int) ([]HistoryEntry, error)
}
