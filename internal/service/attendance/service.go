package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/audient-hq/audient-backend/internal/domain/attendance"
	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	organization.OrganizationRepository

	// now is swappable for tests
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	organizationRepository organization.OrganizationRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:   attendanceRepository,
		UserRepository:         userRepository,
		OrganizationRepository: organizationRepository,
		now:                    time.Now,
	}
}

// RecordLogin implements attendance.AttendanceService. Coordinates are stored
// as given; range checks belong to the HTTP surface, not to this method, so
// the login flow can record whatever the client sent.
func (a *AttendanceServiceImpl) RecordLogin(ctx context.Context, userID string, req attendance.RecordLoginRequest) (attendance.RecordLoginResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return attendance.RecordLoginResponse{}, err
	}

	cfg := organization.DefaultWorkConfig()
	if userData.HasOrganization() {
		org, err := a.OrganizationRepository.GetByID(ctx, *userData.OrganizationID)
		if err == nil {
			cfg = org.WorkConfig()
		} else if !errors.Is(err, organization.ErrOrganizationNotFound) {
			return attendance.RecordLoginResponse{}, fmt.Errorf("failed to get organization: %w", err)
		}
	}

	period := attendance.Classify(a.now(), cfg)

	// Failure isolation boundary: the insert is fire-and-forget. A storage
	// failure here is logged and discarded so the enclosing login flow
	// still succeeds.
	created, err := a.AttendanceRepository.Create(ctx, attendance.Event{
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Period:    period,
	})
	if err != nil {
		slog.Error("attendance insert failed, continuing login", "user_id", userID, "error", err)
		return attendance.RecordLoginResponse{Period: period}, nil
	}

	event := attendance.NewEventResponse(created)
	return attendance.RecordLoginResponse{Event: &event, Period: period}, nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	event, err := a.AttendanceRepository.GetTodayLatest(ctx, userID)
	if err != nil {
		return attendance.TodayResponse{}, err
	}
	if event == nil {
		return attendance.TodayResponse{Attendance: nil}, nil
	}

	resp := attendance.NewEventResponse(*event)
	return attendance.TodayResponse{Attendance: &resp}, nil
}
