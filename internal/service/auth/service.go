package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/audient-hq/audient-backend/internal/domain/attendance"
	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/domain/user"
	"github.com/audient-hq/audient-backend/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

// Transactor runs a function inside a storage transaction; repositories pick
// the transaction up from the context it passes in.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AuthServiceImpl struct {
	tx Transactor
	user.UserRepository
	organization.OrganizationRepository
	jwt.Service
	attendanceService attendance.AttendanceService
	adminSecret       string
}

func NewAuthService(
	tx Transactor,
	userRepository user.UserRepository,
	organizationRepository organization.OrganizationRepository,
	jwtService jwt.Service,
	attendanceService attendance.AttendanceService,
	adminSecret string,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:                     tx,
		UserRepository:         userRepository,
		OrganizationRepository: organizationRepository,
		Service:                jwtService,
		attendanceService:      attendanceService,
		adminSecret:            adminSecret,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	role := user.RoleEmployee
	if req.Role == string(user.RoleAdmin) {
		if req.AdminSecret == "" || req.AdminSecret != a.adminSecret {
			return auth.RegisterResponse{}, auth.ErrInvalidAdminSecret
		}
		if req.OrganizationName == "" {
			return auth.RegisterResponse{}, auth.ErrOrganizationNameRequired
		}
		role = user.RoleAdmin
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return auth.RegisterResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var orgID *string
		if role == user.RoleAdmin {
			org, err := a.OrganizationRepository.Create(txCtx, req.OrganizationName)
			if err != nil {
				return err
			}
			orgID = &org.ID
		}

		created, err = a.UserRepository.Create(txCtx, user.User{
			OrganizationID: orgID,
			Name:           req.Name,
			Email:          req.Email,
			PasswordHash:   string(hash),
			Role:           role,
		})
		return err
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	token, _, err := a.Service.GenerateAccessToken(created.ID, created.Email, created.OrganizationID, created.Role)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.RegisterResponse{
		User:  user.NewProfile(created),
		Token: token,
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	updated, err := a.UserRepository.IncrementLoginCount(ctx, userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to increment login count: %w", err)
	}

	token, _, err := a.Service.GenerateAccessToken(updated.ID, updated.Email, updated.OrganizationID, updated.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	// Attendance recording is auxiliary to authentication: any recorder
	// failure is logged and absorbed here, so a successful credential check
	// never turns into an error response.
	recorded, err := a.attendanceService.RecordLogin(ctx, updated.ID, attendance.RecordLoginRequest{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		slog.Error("attendance recording failed, continuing login", "user_id", updated.ID, "error", err)
		recorded = attendance.RecordLoginResponse{}
	}

	cfg, err := a.effectiveConfig(ctx, updated)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User:      user.NewLoginProfile(updated),
		Token:     token,
		OrgConfig: cfg,
		Period:    recorded.Period,
	}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{User: user.NewProfile(userData)}, nil
}

func (a *AuthServiceImpl) effectiveConfig(ctx context.Context, u user.User) (organization.WorkConfig, error) {
	if !u.HasOrganization() {
		return organization.DefaultWorkConfig(), nil
	}

	org, err := a.OrganizationRepository.GetByID(ctx, *u.OrganizationID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return organization.DefaultWorkConfig(), nil
		}
		return organization.WorkConfig{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return org.WorkConfig(), nil
}
