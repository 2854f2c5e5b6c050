package attendance

import (
	"time"

	"github.com/audient-hq/audient-backend/internal/domain/organization"
)

// Classify maps an instant to a work-window period under the given
// organization config. The instant is converted to wall-clock time in the
// config's zone and compared against the HH:MM boundaries; both boundaries
// belong to the on-time window, so equality yields nil.
//
// Config times are validated at write time, so Classify never fails: an
// unparseable stored value falls back to the default boundary, and an
// unloadable zone falls back to UTC.
func Classify(now time.Time, cfg organization.WorkConfig) *Period {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	local := now.In(loc)
	secondOfDay := local.Hour()*3600 + local.Minute()*60 + local.Second()

	loginBoundary := boundarySeconds(cfg.LoginTime, organization.DefaultLoginTime)
	logoffBoundary := boundarySeconds(cfg.LogoffTime, organization.DefaultLogoffTime)

	switch {
	case secondOfDay < loginBoundary:
		p := PeriodMorning
		return &p
	case secondOfDay > logoffBoundary:
		p := PeriodEvening
		return &p
	default:
		return nil
	}
}

// boundarySeconds parses an "HH:MM" boundary into seconds since midnight.
func boundarySeconds(clock string, fallback string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		t, _ = time.Parse("15:04", fallback)
	}
	return t.Hour()*3600 + t.Minute()*60
}
