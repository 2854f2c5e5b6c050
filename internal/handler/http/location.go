package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/audient-hq/audient-backend/internal/domain/location"
	"github.com/audient-hq/audient-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LocationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	profileService location.ProfileService
}

func NewLocationHandler(profileService location.ProfileService) LocationHandler {
	return &locationHandlerImpl{
		profileService: profileService,
	}
}

// Create implements LocationHandler.
func (h *locationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req location.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Location profile create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.profileService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location profile created successfully", result)
}

// List implements LocationHandler.
func (h *locationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements LocationHandler.
func (h *locationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "profileID")

	if err := h.profileService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location profile deleted successfully", nil)
}
