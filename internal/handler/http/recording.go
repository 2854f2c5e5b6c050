package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/audient-hq/audient-backend/internal/domain/recording"
	"github.com/audient-hq/audient-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecordingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type recordingHandlerImpl struct {
	recordingService recording.RecordingService
}

func NewRecordingHandler(recordingService recording.RecordingService) RecordingHandler {
	return &recordingHandlerImpl{
		recordingService: recordingService,
	}
}

// Create implements RecordingHandler.
func (h *recordingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req recording.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Recording create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recordingService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Recording created successfully", result)
}

// List implements RecordingHandler.
func (h *recordingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.recordingService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements RecordingHandler.
func (h *recordingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recordingID")

	result, err := h.recordingService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements RecordingHandler.
func (h *recordingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recordingID")

	if err := h.recordingService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recording deleted successfully", nil)
}
