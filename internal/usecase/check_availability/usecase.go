package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case справочной проверки доступности слота (публичная форма)
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

// Execute проверяет доступность слота на дату.
// Недоступность — обычный ответ (Available=false), а не ошибка:
// выходной день, дата вне горизонта и занятый слот выглядят для
// формы одинаково.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация параметров
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: missing date", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: missing startTime", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// 2. Слот вне сетки, выходной или дата вне горизонта — недоступно
	now := uc.timeProvider.Now()
	if !domain.IsValidSlot(req.StartTime) ||
		!domain.IsDateBookable(req.Date) ||
		!domain.IsWithinHorizon(req.Date, now) {
		return &Response{Available: false}, nil
	}

	// 3. Проверяем занятость слота активной записью
	_, err := uc.apptRepo.FindActiveByDateSlot(ctx, req.Date, req.StartTime)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return &Response{Available: true}, nil
		}
		uc.logger.Error("CheckAvailability: failed to check slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
	}

	return &Response{Available: false}, nil
}
