package organization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestUpdateConfigRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateConfigRequest
		wantErr error
	}{
		{
			name:    "all fields nil",
			req:     UpdateConfigRequest{},
			wantErr: ErrNoFieldsProvided,
		},
		{
			name:    "valid full update",
			req:     UpdateConfigRequest{LoginTime: strPtr("08:30"), LogoffTime: strPtr("17:30"), Timezone: strPtr("Europe/Berlin")},
			wantErr: nil,
		},
		{
			name:    "valid single field",
			req:     UpdateConfigRequest{Timezone: strPtr("America/New_York")},
			wantErr: nil,
		},
		{
			name:    "bad login time format",
			req:     UpdateConfigRequest{LoginTime: strPtr("9:00")},
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "out of range clock value",
			req:     UpdateConfigRequest{LogoffTime: strPtr("25:00")},
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "unknown timezone",
			req:     UpdateConfigRequest{Timezone: strPtr("Mars/Olympus")},
			wantErr: ErrInvalidTimezone,
		},
		{
			name:    "empty timezone",
			req:     UpdateConfigRequest{Timezone: strPtr("")},
			wantErr: ErrInvalidTimezone,
		},
		{
			name:    "login after logoff",
			req:     UpdateConfigRequest{LoginTime: strPtr("10:00"), LogoffTime: strPtr("09:00")},
			wantErr: ErrLoginNotBeforeLogoff,
		},
		{
			name:    "login equal to logoff",
			req:     UpdateConfigRequest{LoginTime: strPtr("09:00"), LogoffTime: strPtr("09:00")},
			wantErr: ErrLoginNotBeforeLogoff,
		},
		{
			name:    "login only, no ordering check against stored logoff",
			req:     UpdateConfigRequest{LoginTime: strPtr("23:00")},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOrganization_WorkConfig(t *testing.T) {
	t.Run("no stored values yields defaults", func(t *testing.T) {
		org := Organization{ID: "org-1", Name: "Acme"}
		assert.Equal(t, DefaultWorkConfig(), org.WorkConfig())
	})

	t.Run("stored values override per field", func(t *testing.T) {
		org := Organization{
			ID:        "org-1",
			Name:      "Acme",
			LoginTime: strPtr("10:00"),
			Timezone:  strPtr("Europe/London"),
		}

		cfg := org.WorkConfig()
		assert.Equal(t, "10:00", cfg.LoginTime)
		assert.Equal(t, DefaultLogoffTime, cfg.LogoffTime)
		assert.Equal(t, "Europe/London", cfg.Timezone)
	})

	t.Run("empty strings are treated as unset", func(t *testing.T) {
		org := Organization{
			ID:         "org-1",
			LoginTime:  strPtr(""),
			LogoffTime: strPtr(""),
			Timezone:   strPtr(""),
		}
		assert.Equal(t, DefaultWorkConfig(), org.WorkConfig())
	})
}
