package report

import "errors"

var (
	// ErrEmployeeNotFound is returned both when the employee does not exist
	// and when it belongs to another organization, so a cross-tenant probe
	// cannot distinguish the two.
	ErrEmployeeNotFound = errors.New("employee not found")

	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)
