package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/audient-hq/audient-backend/internal/domain/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	recordCalls int
	recordResp  attendance.RecordLoginResponse
}

func (s *stubAttendanceService) RecordLogin(ctx context.Context, userID string, req attendance.RecordLoginRequest) (attendance.RecordLoginResponse, error) {
	s.recordCalls++
	return s.recordResp, nil
}

func (s *stubAttendanceService) GetToday(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	return attendance.TodayResponse{}, nil
}

func attendanceRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": "u1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestAttendanceHandler_RecordLogin_RejectsOutOfRangeCoordinates(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.RecordLogin(rec, attendanceRequest(t, map[string]float64{"latitude": 123.0}))

	// The range check is enforced here and only here; the service is never
	// reached.
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, svc.recordCalls)
}

func TestAttendanceHandler_RecordLogin_Success(t *testing.T) {
	p := attendance.PeriodMorning
	svc := &stubAttendanceService{
		recordResp: attendance.RecordLoginResponse{Period: &p},
	}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.RecordLogin(rec, attendanceRequest(t, map[string]float64{"latitude": 12.9, "longitude": 77.6}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, svc.recordCalls)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Period *string `json:"period"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Data.Period)
	assert.Equal(t, "Morning", *body.Data.Period)
}
