package create_provider

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMG-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CMG-AppointmentService/internal/service/providers"
	"github.com/m04kA/CMG-AppointmentService/internal/service/providers/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingName        = "se requiere el nombre de la obra social"
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

// Handle POST /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingName)

		case errors.Is(err, providers.ErrProviderExists):
			h.logger.Warn("POST /providers - Provider exists: name=%q", req.Name)
			handlers.RespondConflict(w, msgProviderExists)

		default:
			h.logger.Error("POST /providers - Failed to create provider: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers - Provider created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
