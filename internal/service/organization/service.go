package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type ConfigServiceImpl struct {
	user.UserRepository
	organization.OrganizationRepository
}

func NewConfigService(
	userRepository user.UserRepository,
	organizationRepository organization.OrganizationRepository,
) organization.ConfigService {
	return &ConfigServiceImpl{
		UserRepository:         userRepository,
		OrganizationRepository: organizationRepository,
	}
}

// GetConfig implements organization.ConfigService. Any authenticated user;
// falls back to the defaults when no organization is linked.
func (s *ConfigServiceImpl) GetConfig(ctx context.Context) (organization.WorkConfig, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return organization.WorkConfig{}, err
	}

	if !caller.HasOrganization() {
		return organization.DefaultWorkConfig(), nil
	}

	org, err := s.OrganizationRepository.GetByID(ctx, *caller.OrganizationID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return organization.DefaultWorkConfig(), nil
		}
		return organization.WorkConfig{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return org.WorkConfig(), nil
}

// UpdateConfig implements organization.ConfigService. Admin only; validation
// happens before any write, so a rejected request leaves the stored config
// untouched.
func (s *ConfigServiceImpl) UpdateConfig(ctx context.Context, req organization.UpdateConfigRequest) (organization.WorkConfig, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return organization.WorkConfig{}, err
	}

	if !caller.IsAdmin() {
		return organization.WorkConfig{}, user.ErrAdminPrivilegeRequired
	}
	if !caller.HasOrganization() {
		return organization.WorkConfig{}, organization.ErrNoOrganization
	}

	if err := req.Validate(); err != nil {
		return organization.WorkConfig{}, err
	}

	org, err := s.OrganizationRepository.UpdateConfig(ctx, *caller.OrganizationID, req)
	if err != nil {
		return organization.WorkConfig{}, err
	}

	return org.WorkConfig(), nil
}

func (s *ConfigServiceImpl) caller(ctx context.Context) (user.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.User{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.User{}, auth.ErrInvalidToken
	}

	return s.UserRepository.GetByID(ctx, userID)
}
