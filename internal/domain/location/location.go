package location

import (
	"context"
	"errors"
	"time"

	"github.com/audient-hq/audient-backend/internal/pkg/validator"
)

var ErrProfileNotFound = errors.New("location profile not found")

type ProfileType string

const (
	TypeBase   ProfileType = "base"
	TypeClient ProfileType = "client"
)

type Profile struct {
	ID                 string
	UserID             string
	Name               string
	Type               ProfileType
	Address            *string
	Latitude           *float64
	Longitude          *float64
	UseCurrentLocation bool
	CreatedAt          time.Time
}

type CreateRequest struct {
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Address            *string  `json:"address"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	UseCurrentLocation bool     `json:"use_current_location"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsInSlice(r.Type, []string{string(TypeBase), string(TypeClient)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be 'base' or 'client'"})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID                 string      `json:"id"`
	UserID             string      `json:"user_id"`
	Name               string      `json:"name"`
	Type               ProfileType `json:"type"`
	Address            *string     `json:"address"`
	Latitude           *float64    `json:"latitude"`
	Longitude          *float64    `json:"longitude"`
	UseCurrentLocation bool        `json:"use_current_location"`
	CreatedAt          string      `json:"created_at"`
}

func NewResponse(p Profile) Response {
	return Response{
		ID:                 p.ID,
		UserID:             p.UserID,
		Name:               p.Name,
		Type:               p.Type,
		Address:            p.Address,
		Latitude:           p.Latitude,
		Longitude:          p.Longitude,
		UseCurrentLocation: p.UseCurrentLocation,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
}

type ProfileRepository interface {
	Create(ctx context.Context, p Profile) (Profile, error)
	List(ctx context.Context, userID string) ([]Profile, error)
	Delete(ctx context.Context, id string, userID string) error
}

type ProfileService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	List(ctx context.Context) ([]Response, error)
	Delete(ctx context.Context, id string) error
}
