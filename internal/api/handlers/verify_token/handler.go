package verify_token

import (
	"net/http"

	"github.com/m04kA/CMG-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CMG-AppointmentService/internal/api/middleware"
)

// VerifyResponse подтверждение валидности токена с данными оператора
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/auth/verify
// Токен уже проверен middleware, хендлер только возвращает claims.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "token inválido")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, VerifyResponse{
		Valid: true,
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	})
}
