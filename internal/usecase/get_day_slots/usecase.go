package get_day_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

// UseCase use case построения сетки занятости слотов на день (публичная форма)
type UseCase struct {
	apptRepo     AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(apptRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает сетку слотов на дату с признаком доступности.
// Для выходного дня и даты вне горизонта возвращается вся сетка
// с Available=false — форма показывает её, но запись невозможна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: missing date", ErrInvalidInput)
	}

	grid := domain.AvailableSlots("")

	now := uc.timeProvider.Now()
	if !domain.IsDateBookable(req.Date) || !domain.IsWithinHorizon(req.Date, now) {
		slots := make([]Slot, len(grid))
		for i, s := range grid {
			slots[i] = Slot{StartTime: s, Available: false}
		}
		return &Response{Date: req.Date, Slots: slots}, nil
	}

	appointments, err := uc.apptRepo.FindActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to load appointments for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	taken := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		taken[appt.StartTime] = struct{}{}
	}

	slots := make([]Slot, len(grid))
	for i, s := range grid {
		_, occupied := taken[s]
		slots[i] = Slot{StartTime: s, Available: !occupied}
	}

	return &Response{Date: req.Date, Slots: slots}, nil
}
