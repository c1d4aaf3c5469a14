package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case создания записи на приём (публичная форма записи)
type UseCase struct {
	apptRepo     AppointmentRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет создание записи на приём.
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции: предварительная проверка на форме носит справочный характер
// и к моменту отправки может устареть.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: patient=%s %s, date=%s, slot=%s, reason=%s",
		req.FirstName, req.LastName, req.Date.Format(domain.DateFormat), req.StartTime, req.Reason)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты: горизонт записи и рабочие дни
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 3. Проверка доступности + вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем, что слот свободен (с блокировкой FOR UPDATE)
		existing, err := uc.apptRepo.FindActiveByDateSlot(txCtx, req.Date, req.StartTime)
		if err != nil && !errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Error("CreateAppointment: failed to check slot availability: %v", err)
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("CreateAppointment: slot %s %s already taken by appointment id=%s",
				req.Date.Format(domain.DateFormat), req.StartTime, existing.ID)
			return ErrSlotNotAvailable
		}

		// 3.2. Создаем запись со статусом pending
		appt := &domain.Appointment{
			FirstName:         req.FirstName,
			LastName:          req.LastName,
			Phone:             req.Phone,
			Email:             req.Email,
			InsuranceProvider: req.InsuranceProvider,
			Reason:            req.Reason,
			AppointmentDate:   req.Date,
			StartTime:         req.StartTime,
			Status:            domain.StatusPending,
			RequestedAt:       now,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			// Unique index на (дата, слот) мог сработать раньше,
			// чем наша проверка — это тот же конфликт слота
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s %s taken concurrently",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:                result.ID,
		FirstName:         result.FirstName,
		LastName:          result.LastName,
		Phone:             result.Phone,
		Email:             result.Email,
		InsuranceProvider: result.InsuranceProvider,
		Reason:            result.Reason,
		Date:              result.AppointmentDate,
		StartTime:         result.StartTime,
		Status:            string(result.Status),
		RequestedAt:       result.RequestedAt,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}
