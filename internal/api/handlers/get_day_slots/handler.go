package get_day_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/CMG-AppointmentService/internal/api/handlers"
	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	getDaySlots "github.com/m04kA/CMG-AppointmentService/internal/usecase/get_day_slots"
)

const (
	msgMissingDate = "se requiere el parámetro date"
	msgInvalidDate = "formato de fecha inválido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotResponse один слот сетки
type SlotResponse struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// Handle GET /api/v1/appointments/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /appointments/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{Date: date})
	if err != nil {
		if errors.Is(err, getDaySlots.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingDate)
			return
		}
		h.logger.Error("GET /appointments/slots - Failed to build slot grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	slots := make([]SlotResponse, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, DaySlotsResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: slots,
	})
}
