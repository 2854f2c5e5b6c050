package user

import "time"

// Profile is the user shape returned by profile lookups. Optional columns that
// were not selected stay nil instead of being folded into a generic map.
type Profile struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           Role    `json:"role"`
	OrganizationID *string `json:"organization_id"`
	CreatedAt      string  `json:"created_at"`
}

// LoginProfile is the profile shape returned by authentication, where the
// freshly incremented login counter is part of the row.
type LoginProfile struct {
	Profile
	LoginCount int `json:"login_count"`
}

func NewProfile(u User) Profile {
	return Profile{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func NewLoginProfile(u User) LoginProfile {
	return LoginProfile{
		Profile:    NewProfile(u),
		LoginCount: u.LoginCount,
	}
}
