package update_appointment_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case смены статуса записи на приём (панель оператора)
type UseCase struct {
	apptRepo AppointmentRepository
	mailer   MailClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(apptRepo AppointmentRepository, mailer MailClient, logger Logger) *UseCase {
	return &UseCase{
		apptRepo: apptRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

// Execute выполняет перевод записи в новый статус.
// Уведомление пациенту отправляется после успешного сохранения,
// ошибка доставки не откатывает смену статуса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointmentStatus: id=%s, target status=%s", req.ID, req.Status)

	// 1. Валидация целевого статуса
	newStatus := domain.AppointmentStatus(req.Status)
	if !domain.IsValidStatus(newStatus) {
		uc.logger.Warn("UpdateAppointmentStatus: invalid status %q", req.Status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	// 2. Загружаем запись
	appt, err := uc.apptRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: appointment id=%s not found", req.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to get appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Проверяем допустимость перехода по таблице переходов
	if !appt.CanTransitionTo(newStatus) {
		uc.logger.Warn("UpdateAppointmentStatus: transition %s -> %s is not allowed for id=%s",
			appt.Status, newStatus, appt.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
	}

	// 4. Сохраняем новый статус
	if err := uc.apptRepo.UpdateStatus(ctx, appt.ID, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to update status: %v", err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}
	appt.Status = newStatus

	// 5. Уведомляем пациента (best effort)
	uc.notifyPatient(ctx, appt)

	uc.logger.Info("UpdateAppointmentStatus: appointment id=%s is now %s", appt.ID, appt.Status)

	return &Response{
		ID:                appt.ID,
		FirstName:         appt.FirstName,
		LastName:          appt.LastName,
		Phone:             appt.Phone,
		Email:             appt.Email,
		InsuranceProvider: appt.InsuranceProvider,
		Reason:            appt.Reason,
		Date:              appt.AppointmentDate,
		StartTime:         appt.StartTime,
		Status:            string(appt.Status),
		RequestedAt:       appt.RequestedAt,
		CreatedAt:         appt.CreatedAt,
		UpdatedAt:         appt.UpdatedAt,
	}, nil
}

// notifyPatient отправляет пациенту письмо о новом статусе записи.
// Ошибки доставки логируются и не влияют на результат операции.
func (uc *UseCase) notifyPatient(ctx context.Context, appt *domain.Appointment) {
	var subject, htmlBody string

	switch appt.Status {
	case domain.StatusConfirmed:
		subject, htmlBody = confirmationEmail(appt)
	case domain.StatusCancelled:
		subject, htmlBody = cancellationEmail(appt)
	default:
		return
	}

	if err := uc.mailer.Send(ctx, appt.Email, appt.PatientFullName(), subject, htmlBody); err != nil {
		uc.logger.Error("UpdateAppointmentStatus: failed to send %q to %s: %v", subject, appt.Email, err)
	}
}
