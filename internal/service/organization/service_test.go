package organization

import (
	"context"
	"testing"

	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) IncrementLoginCount(ctx context.Context, id string) (user.User, error) {
	u := f.users[id]
	u.LoginCount++
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) ExistsInOrganization(ctx context.Context, userID string, organizationID string) (bool, error) {
	u, ok := f.users[userID]
	if !ok {
		return false, nil
	}
	return u.OrganizationID != nil && *u.OrganizationID == organizationID, nil
}

type fakeOrgRepo struct {
	orgs map[string]organization.Organization
}

func (f *fakeOrgRepo) Create(ctx context.Context, name string) (organization.Organization, error) {
	org := organization.Organization{ID: "org-" + name, Name: name}
	f.orgs[org.ID] = org
	return org, nil
}

func (f *fakeOrgRepo) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, nil
}

func (f *fakeOrgRepo) UpdateConfig(ctx context.Context, id string, req organization.UpdateConfigRequest) (organization.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	if req.LoginTime != nil {
		org.LoginTime = req.LoginTime
	}
	if req.LogoffTime != nil {
		org.LogoffTime = req.LogoffTime
	}
	if req.Timezone != nil {
		org.Timezone = req.Timezone
	}
	f.orgs[id] = org
	return org, nil
}

func ctxWithClaims(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

func newFixture() (*fakeUserRepo, *fakeOrgRepo, organization.ConfigService) {
	users := &fakeUserRepo{users: map[string]user.User{}}
	orgs := &fakeOrgRepo{orgs: map[string]organization.Organization{}}
	return users, orgs, NewConfigService(users, orgs)
}

func TestGetConfig_DefaultsWithoutOrganization(t *testing.T) {
	users, _, svc := newFixture()
	users.users["u1"] = user.User{ID: "u1", Role: user.RoleEmployee}

	cfg, err := svc.GetConfig(ctxWithClaims(t, "u1"))
	require.NoError(t, err)
	assert.Equal(t, organization.DefaultWorkConfig(), cfg)
}

func TestGetConfig_ReturnsStoredConfig(t *testing.T) {
	users, orgs, svc := newFixture()

	orgID := "org-1"
	orgs.orgs[orgID] = organization.Organization{
		ID:        orgID,
		LoginTime: strPtr("10:00"),
		Timezone:  strPtr("Europe/Berlin"),
	}
	users.users["u1"] = user.User{ID: "u1", OrganizationID: &orgID, Role: user.RoleEmployee}

	cfg, err := svc.GetConfig(ctxWithClaims(t, "u1"))
	require.NoError(t, err)
	assert.Equal(t, "10:00", cfg.LoginTime)
	assert.Equal(t, organization.DefaultLogoffTime, cfg.LogoffTime)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
}

func TestGetConfig_MissingClaims(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.GetConfig(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestUpdateConfig_AdminGate(t *testing.T) {
	users, orgs, svc := newFixture()

	orgID := "org-1"
	orgs.orgs[orgID] = organization.Organization{ID: orgID}
	users.users["employee"] = user.User{ID: "employee", OrganizationID: &orgID, Role: user.RoleEmployee}
	users.users["homeless-admin"] = user.User{ID: "homeless-admin", Role: user.RoleAdmin}

	req := organization.UpdateConfigRequest{LoginTime: strPtr("08:00")}

	_, err := svc.UpdateConfig(ctxWithClaims(t, "employee"), req)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	_, err = svc.UpdateConfig(ctxWithClaims(t, "homeless-admin"), req)
	assert.ErrorIs(t, err, organization.ErrNoOrganization)
}

func TestUpdateConfig_ValidationBeforeWrite(t *testing.T) {
	users, orgs, svc := newFixture()

	orgID := "org-1"
	orgs.orgs[orgID] = organization.Organization{ID: orgID, LoginTime: strPtr("09:00")}
	users.users["admin"] = user.User{ID: "admin", OrganizationID: &orgID, Role: user.RoleAdmin}

	_, err := svc.UpdateConfig(ctxWithClaims(t, "admin"), organization.UpdateConfigRequest{})
	assert.ErrorIs(t, err, organization.ErrNoFieldsProvided)

	_, err = svc.UpdateConfig(ctxWithClaims(t, "admin"), organization.UpdateConfigRequest{LoginTime: strPtr("bogus")})
	assert.ErrorIs(t, err, organization.ErrInvalidTimeFormat)

	// Rejected updates leave the stored value in place.
	assert.Equal(t, "09:00", *orgs.orgs[orgID].LoginTime)
}

func TestUpdateConfig_PartialUpdateRoundTrip(t *testing.T) {
	users, orgs, svc := newFixture()

	orgID := "org-1"
	orgs.orgs[orgID] = organization.Organization{ID: orgID}
	users.users["admin"] = user.User{ID: "admin", OrganizationID: &orgID, Role: user.RoleAdmin}

	ctx := ctxWithClaims(t, "admin")

	cfg, err := svc.UpdateConfig(ctx, organization.UpdateConfigRequest{LoginTime: strPtr("07:30")})
	require.NoError(t, err)
	assert.Equal(t, "07:30", cfg.LoginTime)
	assert.Equal(t, organization.DefaultLogoffTime, cfg.LogoffTime)

	// A later update of another field keeps the earlier one.
	cfg, err = svc.UpdateConfig(ctx, organization.UpdateConfigRequest{Timezone: strPtr("America/New_York")})
	require.NoError(t, err)
	assert.Equal(t, "07:30", cfg.LoginTime)
	assert.Equal(t, "America/New_York", cfg.Timezone)

	got, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
