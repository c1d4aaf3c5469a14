package delete_provider

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/CMG-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CMG-AppointmentService/internal/service/providers"
)

const (
	msgInvalidID        = "identificador de obra social inválido"
	msgProviderNotFound = "obra social no encontrada"
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

// Handle DELETE /api/v1/providers/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("DELETE /providers/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, providers.ErrProviderNotFound) {
			h.logger.Warn("DELETE /providers/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgProviderNotFound)
			return
		}
		h.logger.Error("DELETE /providers/{id} - Failed to delete provider: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /providers/{id} - Provider deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
