package organization

import "time"

// Work-window defaults applied when an organization has no stored value.
const (
	DefaultLoginTime  = "09:00"
	DefaultLogoffTime = "18:00"
	DefaultTimezone   = "Asia/Kolkata"
)

type Organization struct {
	ID         string
	Name       string
	LoginTime  *string
	LogoffTime *string
	Timezone   *string
	CreatedAt  time.Time
}

// WorkConfig is an organization's effective work-hour window: stored values
// with defaults filled in per field. Times are wall-clock "HH:MM" strings
// interpreted in Timezone.
type WorkConfig struct {
	LoginTime  string `json:"login_time"`
	LogoffTime string `json:"logoff_time"`
	Timezone   string `json:"timezone"`
}

func DefaultWorkConfig() WorkConfig {
	return WorkConfig{
		LoginTime:  DefaultLoginTime,
		LogoffTime: DefaultLogoffTime,
		Timezone:   DefaultTimezone,
	}
}

// WorkConfig resolves the effective configuration for the organization.
func (o *Organization) WorkConfig() WorkConfig {
	cfg := DefaultWorkConfig()
	if o.LoginTime != nil && *o.LoginTime != "" {
		cfg.LoginTime = *o.LoginTime
	}
	if o.LogoffTime != nil && *o.LogoffTime != "" {
		cfg.LogoffTime = *o.LogoffTime
	}
	if o.Timezone != nil && *o.Timezone != "" {
		cfg.Timezone = *o.Timezone
	}
	return cfg
}
