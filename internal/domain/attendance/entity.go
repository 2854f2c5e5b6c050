package attendance

import "time"

// Period labels a login event relative to the organization's work window.
// A nil Period means the login happened inside the window (on time).
type Period string

const (
	PeriodMorning Period = "Morning" // Before the login boundary
	PeriodEvening Period = "Evening" // After the logoff boundary
)

// Event is a single recorded login. Events are insert-only: never updated or
// deleted once written.
type Event struct {
	ID        string
	UserID    string
	LoginAt   time.Time
	Latitude  *float64
	Longitude *float64
	Period    *Period
	CreatedAt time.Time
}
