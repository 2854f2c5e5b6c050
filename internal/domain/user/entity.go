package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can review attendance and configure the organization
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID             string
	OrganizationID *string
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	LoginCount     int
	CreatedAt      time.Time
}

// IsAdmin checks if user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasOrganization checks if user is linked to an organization
func (u *User) HasOrganization() bool {
	return u.OrganizationID != nil && *u.OrganizationID != ""
}
