package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/audient-hq/audient-backend/internal/domain/attendance"
	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/domain/user"
	"github.com/audient-hq/audient-backend/internal/pkg/jwt"
	attendanceService "github.com/audient-hq/audient-backend/internal/service/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminSecret = "super-secret"

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = "u-" + u.Email
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
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
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
	f.orgs[id] = org
	return org, nil
}

type fakeAttendanceRepo struct {
	events []attendance.Event
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	event.ID = "evt-1"
	event.LoginAt = time.Now()
	event.CreatedAt = event.LoginAt
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeAttendanceRepo) GetTodayLatest(ctx context.Context, userID string) (*attendance.Event, error) {
	return nil, nil
}

// fakeTransactor runs the function directly; the fakes have no transaction
// semantics to thread through.
type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	users  *fakeUserRepo
	orgs   *fakeOrgRepo
	events *fakeAttendanceRepo
	svc    auth.AuthService
}

func newFixture() fixture {
	users := &fakeUserRepo{users: map[string]user.User{}}
	orgs := &fakeOrgRepo{orgs: map[string]organization.Organization{}}
	events := &fakeAttendanceRepo{}

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	attendanceSvc := attendanceService.NewAttendanceService(events, users, orgs)
	svc := NewAuthService(fakeTransactor{}, users, orgs, jwtService, attendanceSvc, testAdminSecret)

	return fixture{users: users, orgs: orgs, events: events, svc: svc}
}

func (f fixture) seedUser(t *testing.T, id, email, password string, role user.Role, orgID *string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.users[id] = user.User{
		ID:             id,
		OrganizationID: orgID,
		Name:           "Test User",
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
	}
}

func TestRegister_AdminCreatesOrganization(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Register(context.Background(), auth.RegisterRequest{
		Name:             "Asha",
		Email:            "asha@example.com",
		Password:         "password123",
		Role:             "admin",
		AdminSecret:      testAdminSecret,
		OrganizationName: "Acme",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.RoleAdmin, resp.User.Role)

	// The organization was created implicitly and the admin linked to it.
	require.NotNil(t, resp.User.OrganizationID)
	org, err := f.orgs.GetByID(context.Background(), *resp.User.OrganizationID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", org.Name)

	stored, err := f.users.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.OrganizationID)
	assert.Equal(t, org.ID, *stored.OrganizationID)
}

func TestRegister_EmployeeHasNoOrganization(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.RoleEmployee, resp.User.Role)
	assert.Nil(t, resp.User.OrganizationID)
	assert.Empty(t, f.orgs.orgs)
}

func TestRegister_AdminSecretGate(t *testing.T) {
	f := newFixture()

	req := auth.RegisterRequest{
		Name:             "Asha",
		Email:            "asha@example.com",
		Password:         "password123",
		Role:             "admin",
		AdminSecret:      "wrong",
		OrganizationName: "Acme",
	}

	_, err := f.svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrInvalidAdminSecret)

	req.AdminSecret = ""
	_, err = f.svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrInvalidAdminSecret)
}

func TestRegister_AdminNeedsOrganizationName(t *testing.T) {
	f := newFixture()

	req := auth.RegisterRequest{
		Name:        "Asha",
		Email:       "asha@example.com",
		Password:    "password123",
		Role:        "admin",
		AdminSecret: testAdminSecret,
	}

	_, err := f.svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrOrganizationNameRequired)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "u1", "taken@example.com", "password123", user.RoleEmployee, nil)

	req := auth.RegisterRequest{
		Name:     "Ravi",
		Email:    "taken@example.com",
		Password: "password123",
	}

	_, err := f.svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestLogin_Success(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "u1", "asha@example.com", "password123", user.RoleEmployee, nil)

	resp, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 1, resp.User.LoginCount)
	assert.Equal(t, organization.DefaultWorkConfig(), resp.OrgConfig)

	// The login also produced an attendance event.
	assert.Len(t, f.events.events, 1)
	assert.Equal(t, "u1", f.events.events[0].UserID)
}

func TestLogin_CountsAccumulate(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "u1", "asha@example.com", "password123", user.RoleEmployee, nil)

	req := auth.LoginRequest{Email: "asha@example.com", Password: "password123"}

	for i := 1; i <= 3; i++ {
		resp, err := f.svc.Login(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, i, resp.User.LoginCount)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "u1", "asha@example.com", "password123", user.RoleEmployee, nil)

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.svc.Login(context.Background(), auth.LoginRequest{
			Email:    "asha@example.com",
			Password: "nope",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email reads the same", func(t *testing.T) {
		_, err := f.svc.Login(context.Background(), auth.LoginRequest{
			Email:    "ghost@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLogin_OutOfRangeCoordinatesStillSucceed(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "u1", "asha@example.com", "password123", user.RoleEmployee, nil)

	lat := 123.0
	lon := -200.0
	resp, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:     "asha@example.com",
		Password:  "password123",
		Latitude:  &lat,
		Longitude: &lon,
	})
	require.NoError(t, err)

	// Coordinates are stored as given; nothing about them blocks the login.
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 1, resp.User.LoginCount)
	require.Len(t, f.events.events, 1)
	require.NotNil(t, f.events.events[0].Latitude)
	assert.Equal(t, 123.0, *f.events.events[0].Latitude)
}

// failingAttendanceService errors on every call.
type failingAttendanceService struct{}

func (failingAttendanceService) RecordLogin(ctx context.Context, userID string, req attendance.RecordLoginRequest) (attendance.RecordLoginResponse, error) {
	return attendance.RecordLoginResponse{}, errors.New("recorder down")
}

func (failingAttendanceService) GetToday(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	return attendance.TodayResponse{}, errors.New("recorder down")
}

func TestLogin_RecorderFailureIsAbsorbed(t *testing.T) {
	users := &fakeUserRepo{users: map[string]user.User{}}
	orgs := &fakeOrgRepo{orgs: map[string]organization.Organization{}}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	svc := NewAuthService(fakeTransactor{}, users, orgs, jwtService, failingAttendanceService{}, testAdminSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	users.users["u1"] = user.User{ID: "u1", Email: "asha@example.com", PasswordHash: string(hash), Role: user.RoleEmployee}

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 1, resp.User.LoginCount)
	assert.Nil(t, resp.Period)
}

func TestLogin_UsesOrganizationConfig(t *testing.T) {
	f := newFixture()

	orgID := "org-1"
	tz := "Europe/Berlin"
	f.orgs.orgs[orgID] = organization.Organization{ID: orgID, Name: "Acme", Timezone: &tz}
	f.seedUser(t, "u1", "asha@example.com", "password123", user.RoleEmployee, &orgID)

	resp, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", resp.OrgConfig.Timezone)
	assert.Equal(t, organization.DefaultLoginTime, resp.OrgConfig.LoginTime)
}

func TestMe(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "u1", "asha@example.com", "password123", user.RoleAdmin, nil)

	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": "u1"})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	resp, err := f.svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", resp.User.Email)

	_, err = f.svc.Me(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
