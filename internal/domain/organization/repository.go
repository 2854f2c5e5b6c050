package organization

import "context"

// OrganizationRepository defines data access methods for organizations.
type OrganizationRepository interface {
	// Create inserts a new organization with the given name. Work-window
	// fields start unset and fall back to the defaults until configured.
	Create(ctx context.Context, name string) (Organization, error)

	// GetByID retrieves an organization by ID
	GetByID(ctx context.Context, id string) (Organization, error)

	// UpdateConfig applies the present fields of req and returns the updated
	// row. Absent fields keep their stored value.
	UpdateConfig(ctx context.Context, id string, req UpdateConfigRequest) (Organization, error)
}
