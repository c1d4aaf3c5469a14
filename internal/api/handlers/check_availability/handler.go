package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/CMG-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	checkAvailability "github.com/m04kA/CMG-AppointmentService/internal/usecase/check_availability"
	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

const (
	msgMissingParams = "se requieren los parámetros date y startTime"
	msgInvalidDate   = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTime   = "formato de hora inválido, se espera HH:MM"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// Handle GET /api/v1/appointments/availability?date=YYYY-MM-DD&startTime=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	timeParam := r.URL.Query().Get("startTime")

	if dateParam == "" || timeParam == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /appointments/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(timeParam)
	if err != nil {
		h.logger.Warn("GET /appointments/availability - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		Date:      date,
		StartTime: startTime,
	})
	if err != nil {
		if errors.Is(err, checkAvailability.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingParams)
			return
		}
		h.logger.Error("GET /appointments/availability - Failed to check slot: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Available: result.Available})
}
