package report

import (
	"context"
	"testing"
	"time"

	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/domain/report"
	"github.com/audient-hq/audient-backend/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) IncrementLoginCount(ctx context.Context, id string) (user.User, error) {
	u := f.users[id]
	u.LoginCount++
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) ExistsInOrganization(ctx context.Context, userID string, organizationID string) (bool, error) {
	u, ok := f.users[userID]
	if !ok {
		return false, nil
	}
	return u.OrganizationID != nil && *u.OrganizationID == organizationID, nil
}

type fakeReportRepo struct {
	employees    []report.EmployeeLastLogin
	dateRecords  []report.DateRecord
	monthDays    map[string]int
	history      []report.HistoryEntry
	historyLimit int
}

func (f *fakeReportRepo) EmployeesWithLastLogin(ctx context.Context, organizationID string) ([]report.EmployeeLastLogin, error) {
	return f.employees, nil
}

func (f *fakeReportRepo) AttendanceByDate(ctx context.Context, organizationID string, date time.Time) ([]report.DateRecord, error) {
	return f.dateRecords, nil
}

func (f *fakeReportRepo) MonthSummary(ctx context.Context, organizationID string, year int, month int) (map[string]int, error) {
	return f.monthDays, nil
}

func (f *fakeReportRepo) EmployeeHistory(ctx context.Context, employeeID string, limit int) ([]report.HistoryEntry, error) {
	f.historyLimit = limit
	if len(f.history) > limit {
		return f.history[:limit], nil
	}
	return f.history, nil
}

func ctxWithClaims(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newFixture() (*fakeUserRepo, *fakeReportRepo, report.ReportService) {
	users := &fakeUserRepo{users: map[string]user.User{}}
	reports := &fakeReportRepo{}
	return users, reports, NewReportService(reports, users)
}

func seedAdmin(users *fakeUserRepo, orgID string) {
	users.users["admin"] = user.User{ID: "admin", OrganizationID: &orgID, Role: user.RoleAdmin}
}

func TestReview_RequiresAdminWithOrganization(t *testing.T) {
	users, _, svc := newFixture()

	orgID := "org-1"
	users.users["employee"] = user.User{ID: "employee", OrganizationID: &orgID, Role: user.RoleEmployee}
	users.users["homeless-admin"] = user.User{ID: "homeless-admin", Role: user.RoleAdmin}

	_, err := svc.EmployeesWithLastLogin(ctxWithClaims(t, "employee"))
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	_, err = svc.EmployeesWithLastLogin(ctxWithClaims(t, "homeless-admin"))
	assert.ErrorIs(t, err, organization.ErrNoOrganization)

	_, err = svc.MonthSummary(ctxWithClaims(t, "employee"), 2024, 6)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestEmployeesWithLastLogin(t *testing.T) {
	users, reports, svc := newFixture()
	seedAdmin(users, "org-1")

	last := "2024-06-10T09:05:00Z"
	reports.employees = []report.EmployeeLastLogin{
		{ID: "u1", Name: "Asha", LoginCount: 4, LastLoginAt: &last},
		{ID: "u2", Name: "Ravi", LoginCount: 0, LastLoginAt: nil},
	}

	resp, err := svc.EmployeesWithLastLogin(ctxWithClaims(t, "admin"))
	require.NoError(t, err)
	require.Len(t, resp.Employees, 2)
	assert.Nil(t, resp.Employees[1].LastLoginAt)
}

func TestAttendanceByDate(t *testing.T) {
	users, reports, svc := newFixture()
	seedAdmin(users, "org-1")

	reports.dateRecords = []report.DateRecord{{ID: "evt-1", UserID: "u1", Name: "Asha"}}

	t.Run("valid date", func(t *testing.T) {
		resp, err := svc.AttendanceByDate(ctxWithClaims(t, "admin"), "2024-06-10")
		require.NoError(t, err)
		assert.Equal(t, "2024-06-10", resp.Date)
		assert.Len(t, resp.Records, 1)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.AttendanceByDate(ctxWithClaims(t, "admin"), "10-06-2024")
		assert.ErrorIs(t, err, report.ErrInvalidDate)
	})
}

func TestMonthSummary(t *testing.T) {
	users, reports, svc := newFixture()
	seedAdmin(users, "org-1")

	reports.monthDays = map[string]int{
		"2024-06-03": 5,
		"2024-06-04": 2,
	}

	t.Run("valid month", func(t *testing.T) {
		resp, err := svc.MonthSummary(ctxWithClaims(t, "admin"), 2024, 6)
		require.NoError(t, err)
		assert.Equal(t, 2024, resp.Year)
		assert.Equal(t, 6, resp.Month)
		assert.Len(t, resp.Days, 2)
		// Days with no logins are simply absent.
		_, present := resp.Days["2024-06-05"]
		assert.False(t, present)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := svc.MonthSummary(ctxWithClaims(t, "admin"), 2024, 0)
		assert.ErrorIs(t, err, report.ErrInvalidMonth)

		_, err = svc.MonthSummary(ctxWithClaims(t, "admin"), 2024, 13)
		assert.ErrorIs(t, err, report.ErrInvalidMonth)
	})
}

func TestEmployeeHistory(t *testing.T) {
	users, reports, svc := newFixture()

	orgID := "org-1"
	otherOrg := "org-2"
	seedAdmin(users, orgID)
	users.users["u1"] = user.User{ID: "u1", OrganizationID: &orgID, Role: user.RoleEmployee}
	users.users["outsider"] = user.User{ID: "outsider", OrganizationID: &otherOrg, Role: user.RoleEmployee}

	reports.history = []report.HistoryEntry{{ID: "evt-1"}, {ID: "evt-2"}}

	t.Run("member of the organization", func(t *testing.T) {
		resp, err := svc.EmployeeHistory(ctxWithClaims(t, "admin"), "u1")
		require.NoError(t, err)
		assert.Len(t, resp.Attendance, 2)
		assert.Equal(t, 50, reports.historyLimit)
	})

	t.Run("cross-tenant employee reads as missing", func(t *testing.T) {
		_, err := svc.EmployeeHistory(ctxWithClaims(t, "admin"), "outsider")
		assert.ErrorIs(t, err, report.ErrEmployeeNotFound)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.EmployeeHistory(ctxWithClaims(t, "admin"), "ghost")
		assert.ErrorIs(t, err, report.ErrEmployeeNotFound)
	})
}
