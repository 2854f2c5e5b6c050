package auth

import "errors"

var (
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrInvalidAdminSecret       = errors.New("invalid admin secret key")
	ErrOrganizationNameRequired = errors.New("organization name is required for admin accounts")
)
