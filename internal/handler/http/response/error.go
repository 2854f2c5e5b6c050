package response

import (
	"errors"
	"net/http"

	"github.com/audient-hq/audient-backend/internal/domain/attendance"
	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/client"
	"github.com/audient-hq/audient-backend/internal/domain/location"
	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/domain/recording"
	"github.com/audient-hq/audient-backend/internal/domain/report"
	"github.com/audient-hq/audient-backend/internal/domain/user"
	"github.com/audient-hq/audient-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidAdminSecret):
		Forbidden(w, "Invalid admin secret key")
	case errors.Is(err, auth.ErrOrganizationNameRequired):
		BadRequest(w, "Organization name is required for admin accounts", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrNoOrganization):
		BadRequest(w, "No organization linked to this account", nil)
	case errors.Is(err, organization.ErrNoFieldsProvided):
		BadRequest(w, "No fields to update", nil)
	case errors.Is(err, organization.ErrInvalidTimeFormat):
		BadRequest(w, "Time must be in HH:MM format", nil)
	case errors.Is(err, organization.ErrInvalidTimezone):
		BadRequest(w, "Unrecognized timezone", nil)
	case errors.Is(err, organization.ErrLoginNotBeforeLogoff):
		BadRequest(w, "login_time must be before logoff_time", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance record not found")

	// Report domain errors
	case errors.Is(err, report.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, report.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientCodeExists):
		Conflict(w, "Client code already exists")
	case errors.Is(err, client.ErrStakeholderNotFound):
		NotFound(w, "Stakeholder not found")

	// Recording domain errors
	case errors.Is(err, recording.ErrRecordingNotFound):
		NotFound(w, "Recording not found")

	// Location profile domain errors
	case errors.Is(err, location.ErrProfileNotFound):
		NotFound(w, "Location profile not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
