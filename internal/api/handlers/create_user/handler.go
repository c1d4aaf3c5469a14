package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMG-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CMG-AppointmentService/internal/service/users"
	"github.com/m04kA/CMG-AppointmentService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "datos de usuario inválidos"
	msgEmailExists        = "ya existe un usuario con ese email"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, users.ErrEmailExists):
			h.logger.Warn("POST /users - Email exists: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailExists)

		default:
			h.logger.Error("POST /users - Failed to create user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created: id=%s, role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
