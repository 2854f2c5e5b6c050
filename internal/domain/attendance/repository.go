package attendance

import "context"

// AttendanceRepository defines data access methods for attendance events.
// Events are insert-only; there are no update or delete methods.
type AttendanceRepository interface {
	// Create inserts a new login event
	Create(ctx context.Context, event Event) (Event, error)

	// GetTodayLatest retrieves the user's most recent event whose stored
	// login_at falls on the current date, or nil if there is none.
	GetTodayLatest(ctx context.Context, userID string) (*Event, error)
}
