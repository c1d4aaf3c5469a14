package update_provider

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/CMG-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CMG-AppointmentService/internal/service/providers"
	"github.com/m04kA/CMG-AppointmentService/internal/service/providers/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidID          = "identificador de obra social inválido"
	msgMissingName        = "se requiere el nombre de la obra social"
	msgProviderNotFound   = "obra social no encontrada"
	msgProviderExists     = "la obra social ya existe"
)

type Handler struct {
	service ProvidersService
	logger  Logger
}

func NewHandler(service ProvidersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/providers/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PUT /providers/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateName(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingName)

		case errors.Is(err, providers.ErrProviderNotFound):
			h.logger.Warn("PUT /providers/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, providers.ErrProviderExists):
			h.logger.Warn("PUT /providers/{id} - Name taken: id=%s, name=%q", id, req.Name)
			handlers.RespondConflict(w, msgProviderExists)

		default:
			h.logger.Error("PUT /providers/{id} - Failed to update provider: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /providers/{id} - Provider updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
