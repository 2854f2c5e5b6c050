package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrNoOrganization       = errors.New("no organization linked to this account")

	// Config validation errors
	ErrNoFieldsProvided     = errors.New("no fields to update")
	ErrInvalidTimeFormat    = errors.New("time must be in HH:MM format")
	ErrInvalidTimezone      = errors.New("unrecognized timezone")
	ErrLoginNotBeforeLogoff = errors.New("login_time must be before logoff_time")
)
