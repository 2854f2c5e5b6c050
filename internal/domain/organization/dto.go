package organization

import "github.com/audient-hq/audient-backend/internal/pkg/validator"

// UpdateConfigRequest is a partial update: nil fields are left untouched. The
// repository renders only the present fields into the UPDATE statement.
type UpdateConfigRequest struct {
	LoginTime  *string `json:"login_time"`
	LogoffTime *string `json:"logoff_time"`
	Timezone   *string `json:"timezone"`
}

func (r *UpdateConfigRequest) Validate() error {
	if r.LoginTime == nil && r.LogoffTime == nil && r.Timezone == nil {
		return ErrNoFieldsProvided
	}

	if r.LoginTime != nil && !validator.IsValidClockTime(*r.LoginTime) {
		return ErrInvalidTimeFormat
	}
	if r.LogoffTime != nil && !validator.IsValidClockTime(*r.LogoffTime) {
		return ErrInvalidTimeFormat
	}
	if r.Timezone != nil && !validator.IsValidTimezone(*r.Timezone) {
		return ErrInvalidTimezone
	}

	// Zero-padded HH:MM strings order the same lexicographically as the wall
	// clock, so a string comparison is enough here.
	if r.LoginTime != nil && r.LogoffTime != nil && *r.LoginTime >= *r.LogoffTime {
		return ErrLoginNotBeforeLogoff
	}

	return nil
}

type ConfigResponse struct {
	Config WorkConfig `json:"config"`
}
