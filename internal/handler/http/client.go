package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/audient-hq/audient-backend/internal/domain/client"
	"github.com/audient-hq/audient-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddStakeholder(w http.ResponseWriter, r *http.Request)
	ListStakeholders(w http.ResponseWriter, r *http.Request)
	RemoveStakeholder(w http.ResponseWriter, r *http.Request)
}

type clientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &clientHandlerImpl{
		clientService: clientService,
	}
}

// Create implements ClientHandler.
func (h *clientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Client create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.clientService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", result)
}

// List implements ClientHandler.
func (h *clientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.clientService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements ClientHandler.
func (h *clientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "clientID")

	result, err := h.clientService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ClientHandler.
func (h *clientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "clientID")

	var req client.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Client update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.clientService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated successfully", result)
}

// Delete implements ClientHandler.
func (h *clientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "clientID")

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

// AddStakeholder implements ClientHandler.
func (h *clientHandlerImpl) AddStakeholder(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	var req client.CreateStakeholderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Stakeholder create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.clientService.AddStakeholder(r.Context(), clientID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stakeholder added successfully", result)
}

// ListStakeholders implements ClientHandler.
func (h *clientHandlerImpl) ListStakeholders(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	result, err := h.clientService.ListStakeholders(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RemoveStakeholder implements ClientHandler.
func (h *clientHandlerImpl) RemoveStakeholder(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	stakeholderID := chi.URLParam(r, "stakeholderID")

	if err := h.clientService.RemoveStakeholder(r.Context(), clientID, stakeholderID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stakeholder removed successfully", nil)
}
