package auth

import (
	"github.com/audient-hq/audient-backend/internal/domain/attendance"
	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/domain/user"
	"github.com/audient-hq/audient-backend/internal/pkg/validator"
)

// ========================================
// AUTH DTOs
// ========================================

type RegisterRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	AdminSecret      string `json:"admin_secret"`
	OrganizationName string `json:"organization_name"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if r.Role != "" && !validator.IsInSlice(r.Role, []string{string(user.RoleAdmin), string(user.RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be 'admin' or 'employee'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterResponse struct {
	User  user.Profile `json:"user"`
	Token string       `json:"token"`
}

type LoginResponse struct {
	User      user.LoginProfile       `json:"user"`
	Token     string                  `json:"token"`
	OrgConfig organization.WorkConfig `json:"org_config"`
	Period    *attendance.Period      `json:"period"`
}

type MeResponse struct {
	User user.Profile `json:"user"`
}
