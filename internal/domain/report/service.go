package report

import "context"

// ReportService defines the admin attendance-review operations. Every method
// requires the caller (identified by the token claims in ctx) to be an admin
// with a linked organization, and scopes results to that organization.
type ReportService interface {
	EmployeesWithLastLogin(ctx context.Context) (EmployeesResponse, error)
	AttendanceByDate(ctx context.Context, date string) (ByDateResponse, error)
	MonthSummary(ctx context.Context, year int, month int) (MonthSummaryResponse, error)
	EmployeeHistory(ctx context.Context, employeeID string) (HistoryResponse, error)
}
