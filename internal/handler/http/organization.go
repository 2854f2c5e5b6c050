package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/audient-hq/audient-backend/internal/domain/organization"
	"github.com/audient-hq/audient-backend/internal/handler/http/response"
)

type OrganizationHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
}

type organizationHandlerImpl struct {
	configService organization.ConfigService
}

func NewOrganizationHandler(configService organization.ConfigService) OrganizationHandler {
	return &organizationHandlerImpl{
		configService: configService,
	}
}

// GetConfig implements OrganizationHandler.
func (h *organizationHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.GetConfig(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateConfig implements OrganizationHandler.
func (h *organizationHandlerImpl) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req organization.UpdateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.configService.UpdateConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configuration updated", result)
}
