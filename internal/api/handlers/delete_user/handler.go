package delete_user

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/CMG-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CMG-AppointmentService/internal/service/users"
)

const (
	msgInvalidID    = "identificador de usuario inválido"
	msgUserNotFound = "usuario no encontrado"
	msgLastAdmin    = "no se puede eliminar al último administrador"
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

// Handle DELETE /api/v1/users/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("DELETE /users/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("DELETE /users/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrLastAdmin):
			h.logger.Warn("DELETE /users/{id} - Refusing to delete last admin: id=%s", id)
			handlers.RespondConflict(w, msgLastAdmin)

		default:
			h.logger.Error("DELETE /users/{id} - Failed to delete user: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
