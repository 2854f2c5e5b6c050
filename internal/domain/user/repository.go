package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// ExistsByEmail checks whether an account with this email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// IncrementLoginCount bumps the login counter in a single UPDATE and
	// returns the updated row. Atomic at the storage layer, so concurrent
	// logins by the same user never lose an increment.
	IncrementLoginCount(ctx context.Context, id string) (User, error)

	// ExistsInOrganization checks that a user belongs to the given
	// organization. Used for cross-tenant access checks.
	ExistsInOrganization(ctx context.Context, userID string, organizationID string) (bool, error)
}
