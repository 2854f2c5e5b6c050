package organization

import "context"

// ConfigService exposes the organization work-window configuration. The
// caller identity is taken from the token claims in ctx.
type ConfigService interface {
	// GetConfig returns the effective config for the caller's organization,
	// or the defaults if none is linked.
	GetConfig(ctx context.Context) (WorkConfig, error)

	// UpdateConfig applies a partial update to the caller's organization.
	// Admin only; validated before any write.
	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (WorkConfig, error)
}
