package report

import (
	"context"

	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/domain/report"
	"github.com/audient-hq/audient-backend/internal/domain/user"
	"github.com/audient-hq/audient-backend/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

// historyLimit caps per-employee history reads.
const historyLimit = 50

type ReportServiceImpl struct {
	report.ReportRepository
	user.UserRepository
}

func NewReportService(
	reportRepository report.ReportRepository,
	userRepository user.UserRepository,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepository,
		UserRepository:   userRepository,
	}
}

// EmployeesWithLastLogin implements report.ReportService.
func (s *ReportServiceImpl) EmployeesWithLastLogin(ctx context.Context) (report.EmployeesResponse, error) {
	orgID, err := s.requireAdmin(ctx)
	if err != nil {
		return report.EmployeesResponse{}, err
	}

	employees, err := s.ReportRepository.EmployeesWithLastLogin(ctx, orgID)
	if err != nil {
		return report.EmployeesResponse{}, err
	}

	return report.EmployeesResponse{Employees: employees}, nil
}

// AttendanceByDate implements report.ReportService.
func (s *ReportServiceImpl) AttendanceByDate(ctx context.Context, date string) (report.ByDateResponse, error) {
	orgID, err := s.requireAdmin(ctx)
	if err != nil {
		return report.ByDateResponse{}, err
	}

	day, ok := validator.IsValidDate(date)
	if !ok {
		return report.ByDateResponse{}, report.ErrInvalidDate
	}

	records, err := s.ReportRepository.AttendanceByDate(ctx, orgID, day)
	if err != nil {
		return report.ByDateResponse{}, err
	}

	return report.ByDateResponse{Records: records, Date: date}, nil
}

// MonthSummary implements report.ReportService.
func (s *ReportServiceImpl) MonthSummary(ctx context.Context, year int, month int) (report.MonthSummaryResponse, error) {
	orgID, err := s.requireAdmin(ctx)
	if err != nil {
		return report.MonthSummaryResponse{}, err
	}

	if month < 1 || month > 12 {
		return report.MonthSummaryResponse{}, report.ErrInvalidMonth
	}

	days, err := s.ReportRepository.MonthSummary(ctx, orgID, year, month)
	if err != nil {
		return report.MonthSummaryResponse{}, err
	}

	return report.MonthSummaryResponse{Days: days, Year: year, Month: month}, nil
}

// EmployeeHistory implements report.ReportService. An employee outside the
// caller's organization reads the same as a missing one.
func (s *ReportServiceImpl) EmployeeHistory(ctx context.Context, employeeID string) (report.HistoryResponse, error) {
	orgID, err := s.requireAdmin(ctx)
	if err != nil {
		return report.HistoryResponse{}, err
	}

	inOrg, err := s.UserRepository.ExistsInOrganization(ctx, employeeID, orgID)
	if err != nil {
		return report.HistoryResponse{}, err
	}
	if !inOrg {
		return report.HistoryResponse{}, report.ErrEmployeeNotFound
	}

	entries, err := s.ReportRepository.EmployeeHistory(ctx, employeeID, historyLimit)
	if err != nil {
		return report.HistoryResponse{}, err
	}

	return report.HistoryResponse{Attendance: entries}, nil
}

// requireAdmin resolves the caller from the token claims and enforces the
// admin-with-organization gate shared by every review operation.
func (s *ReportServiceImpl) requireAdmin(ctx context.Context) (orgID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	caller, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if !caller.IsAdmin() {
		return "", user.ErrAdminPrivilegeRequired
	}
	if !caller.HasOrganization() {
		return "", organization.ErrNoOrganization
	}

	return *caller.OrganizationID, nil
}
