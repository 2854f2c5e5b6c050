package attendance

import (
	"time"

	"github.com/audient-hq/audient-backend/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordLoginRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *RecordLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	LoginAt   string   `json:"login_at"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Period    *Period  `json:"period"`
	CreatedAt string   `json:"created_at"`
}

func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		LoginAt:   e.LoginAt.Format(time.RFC3339),
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
		Period:    e.Period,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

// RecordLoginResponse reports the classified period for a login. Event is nil
// when the underlying insert was absorbed (see Service.RecordLogin).
type RecordLoginResponse struct {
	Event  *EventResponse `json:"event"`
	Period *Period        `json:"period"`
}

type TodayResponse struct {
	Attendance *EventResponse `json:"attendance"`
}
