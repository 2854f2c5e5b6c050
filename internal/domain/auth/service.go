package auth

import "context"

// AuthService defines account registration and authentication.
type AuthService interface {
	// Register creates a user account. An admin registration requires the
	// configured admin secret plus an organization name, and implicitly
	// creates that organization.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// Login authenticates, bumps the login counter, issues a token and
	// records attendance best-effort.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Me resolves the caller's token claims to their profile.
	Me(ctx context.Context) (MeResponse, error)
}
