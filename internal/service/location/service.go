package location

import (
	"context"

	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/location"
	"github.com/go-chi/jwtauth/v5"
)

type ProfileServiceImpl struct {
	location.ProfileRepository
}

func NewProfileService(profileRepository location.ProfileRepository) location.ProfileService {
	return &ProfileServiceImpl{ProfileRepository: profileRepository}
}

func (s *ProfileServiceImpl) Create(ctx context.Context, req location.CreateRequest) (location.Response, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return location.Response{}, err
	}

	if err := req.Validate(); err != nil {
		return location.Response{}, err
	}

	created, err := s.ProfileRepository.Create(ctx, location.Profile{
		UserID:             userID,
		Name:               req.Name,
		Type:               location.ProfileType(req.Type),
		Address:            req.Address,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		UseCurrentLocation: req.UseCurrentLocation,
	})
	if err != nil {
		return location.Response{}, err
	}

	return location.NewResponse(created), nil
}

func (s *ProfileServiceImpl) List(ctx context.Context) ([]location.Response, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := s.ProfileRepository.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]location.Response, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, location.NewResponse(p))
	}
	return responses, nil
}

func (s *ProfileServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}
	return s.ProfileRepository.Delete(ctx, id, userID)
}

func callerID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
