package recording

import (
	"context"

	"github.com/audient-hq/audient-backend/internal/domain/auth"
	"github.com/audient-hq/audient-backend/internal/domain/recording"
	"github.com/go-chi/jwtauth/v5"
)

type RecordingServiceImpl struct {
	recording.RecordingRepository
}

func NewRecordingService(recordingRepository recording.RecordingRepository) recording.RecordingService {
	return &RecordingServiceImpl{RecordingRepository: recordingRepository}
}

func (s *RecordingServiceImpl) Create(ctx context.Context, req recording.CreateRequest) (recording.Response, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return recording.Response{}, err
	}

	created, err := s.RecordingRepository.Create(ctx, recording.Recording{
		UserID:          userID,
		Transcript:      req.Transcript,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		return recording.Response{}, err
	}

	return recording.NewResponse(created), nil
}

func (s *RecordingServiceImpl) List(ctx context.Context) ([]recording.Response, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	recordings, err := s.RecordingRepository.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]recording.Response, 0, len(recordings))
	for _, rec := range recordings {
		responses = append(responses, recording.NewResponse(rec))
	}
	return responses, nil
}

func (s *RecordingServiceImpl) Get(ctx context.Context, id string) (recording.Response, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return recording.Response{}, err
	}

	rec, err := s.RecordingRepository.GetByID(ctx, id, userID)
	if err != nil {
		return recording.Response{}, err
	}
	return recording.NewResponse(rec), nil
}

func (s *RecordingServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}
	return s.RecordingRepository.Delete(ctx, id, userID)
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
