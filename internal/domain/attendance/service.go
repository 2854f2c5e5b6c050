package attendance

import "context"

// AttendanceService defines business logic for attendance recording.
type AttendanceService interface {
	// RecordLogin resolves the user's organization config, classifies the
	// current instant and persists the event. Persistence is best-effort:
	// an insert failure is logged and absorbed, never surfaced, so a
	// successful login is never turned into a visible error. The returned
	// response carries a nil Event in that case.
	RecordLogin(ctx context.Context, userID string, req RecordLoginRequest) (RecordLoginResponse, error)

	// GetToday returns the caller's most recent login event of the current
	// date, or a nil attendance if there is none.
	GetToday(ctx context.Context, userID string) (TodayResponse, error)
}
