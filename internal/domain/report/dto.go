package report

import (
	"github.com/audient-hq/audient-backend/internal/domain/attendance"
	"github.com/audient-hq/audient-backend/internal/domain/user"
)

// ========================================
// ADMIN REVIEW DTOs
// ========================================

// EmployeeLastLogin is one roster row: a user of the organization with their
// most recent login event left-joined in. Users who never logged in keep the
// nil login fields and sort last.
type EmployeeLastLogin struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          user.Role `json:"role"`
	LoginCount    int       `json:"login_count"`
	CreatedAt     string    `json:"created_at"`
	LastLoginAt   *string   `json:"last_login_at"`
	LastLatitude  *float64  `json:"last_latitude"`
	LastLongitude *float64  `json:"last_longitude"`
}

type EmployeesResponse struct {
	Employees []EmployeeLastLogin `json:"employees"`
}

// DateRecord is one attendance event on a queried date, joined with the user
// it belongs to.
type DateRecord struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      user.Role          `json:"role"`
	LoginAt   string             `json:"login_at"`
	Latitude  *float64           `json:"latitude"`
	Longitude *float64           `json:"longitude"`
	Period    *attendance.Period `json:"period"`
}

type ByDateResponse struct {
	Records []DateRecord `json:"records"`
	Date    string       `json:"date"`
}

// MonthSummaryResponse maps ISO dates to login counts for one month. Days
// with no logins are absent from the map, not present as zero.
type MonthSummaryResponse struct {
	Days  map[string]int `json:"days"`
	Year  int            `json:"year"`
	Month int            `json:"month"`
}

type HistoryEntry struct {
	ID        string             `json:"id"`
	LoginAt   string             `json:"login_at"`
	Latitude  *float64           `json:"latitude"`
	Longitude *float64           `json:"longitude"`
	Period    *attendance.Period `json:"period"`
}

type HistoryResponse struct {
	Attendance []HistoryEntry `json:"attendance"`
}
