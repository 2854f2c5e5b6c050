package recording

import (
	"context"
	"errors"
	"time"

	"github.com/audient-hq/audient-backend/internal/pkg/validator"
)

var ErrRecordingNotFound = errors.New("recording not found")

type Recording struct {
	ID              string
	UserID          string
	Transcript      *string
	DurationSeconds *int
	CreatedAt       time.Time
}

type CreateRequest struct {
	Transcript      *string `json:"transcript"`
	DurationSeconds *int    `json:"duration_seconds"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DurationSeconds != nil && *r.DurationSeconds < 0 {
		errs = append(errs, validator.ValidationError{Field: "duration_seconds", Message: "duration_seconds must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Transcript      *string `json:"transcript"`
	DurationSeconds *int    `json:"duration_seconds"`
	CreatedAt       string  `json:"created_at"`
}

func NewResponse(r Recording) Response {
	return Response{
		ID:              r.ID,
		UserID:          r.UserID,
		Transcript:      r.Transcript,
		DurationSeconds: r.DurationSeconds,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

type RecordingRepository interface {
	Create(ctx context.Context, r Recording) (Recording, error)
	List(ctx context.Context, userID string) ([]Recording, error)
	GetByID(ctx context.Context, id string, userID string) (Recording, error)
	Delete(ctx context.Context, id string, userID string) error
}

type RecordingService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (Response, error)
	Delete(ctx context.Context, id string) error
}
